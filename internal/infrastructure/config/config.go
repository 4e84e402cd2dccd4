// Package config reads the service settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Tables struct {
	Leads            string
	Proposals        string
	Contracts        string
	ContractPayments string
}

type Company struct {
	Name  string
	Phone string
	Email string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether outbound mail is configured.
func (s SMTP) Enabled() bool {
	return s.Host != ""
}

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base used to build signature image links. Defaults to
	// the endpoint.
	PublicURL string
}

func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type MercadoPago struct {
	AccessToken     string
	MockMode        bool
	TestPayerEmail  string
	TestPayerUserID string
}

type Config struct {
	Port     string
	Region   string
	Endpoint string
	// Local DynamoDB does not validate credentials, but the AWS SDK requires
	// them.
	AccessKeyID     string
	SecretAccessKey string
	Tables          Tables

	PublicOrigin string
	Company      Company
	Timezone     string

	OriginLookupURL     string
	OriginLookupTimeout time.Duration
	FunnelOrphanPolicy  string

	RedisURL         string
	ContractCacheTTL time.Duration

	SMTP        SMTP
	MinIO       MinIO
	MercadoPago MercadoPago

	LogLevel  string
	LogFormat string
}

// Load reads every setting, falling back to local-friendly defaults.
func Load() Config {
	return Config{
		Port:     getenvDefault("PORT", "8080"),
		Region:   getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),

		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Tables: Tables{
			Leads:            getenvDefault("LEADS_TABLE", "leads"),
			Proposals:        getenvDefault("PROPOSALS_TABLE", "proposals"),
			Contracts:        getenvDefault("CONTRACTS_TABLE", "contracts"),
			ContractPayments: getenvDefault("CONTRACT_PAYMENTS_TABLE", "contract_payments"),
		},

		PublicOrigin: strings.TrimRight(getenvDefault("PUBLIC_ORIGIN", "http://localhost:8080"), "/"),
		Company: Company{
			Name:  os.Getenv("COMPANY_NAME"),
			Phone: os.Getenv("COMPANY_PHONE"),
			Email: os.Getenv("COMPANY_EMAIL"),
		},
		Timezone: getenvDefault("TIMEZONE", "America/Sao_Paulo"),

		OriginLookupURL:     getenvDefault("ORIGIN_LOOKUP_URL", "https://api.ipify.org?format=json"),
		OriginLookupTimeout: getenvDuration("ORIGIN_LOOKUP_TIMEOUT", 3*time.Second),
		FunnelOrphanPolicy:  getenvDefault("FUNNEL_ORPHAN_POLICY", "drop"),

		RedisURL:         os.Getenv("REDIS_URL"),
		ContractCacheTTL: getenvDuration("CONTRACT_CACHE_TTL", 5*time.Minute),

		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		MinIO: MinIO{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenvDefault("MINIO_BUCKET", "signatures"),
			UseSSL:    getenvBool("MINIO_USE_SSL"),
			PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
		},
		MercadoPago: MercadoPago{
			AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			MockMode:        getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},

		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "text"),
	}
}

// Location resolves Timezone, falling back to UTC when the zone database
// does not know it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// getenvDuration accepts Go durations ("3s") or plain seconds ("3").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

package database

import (
	"context"
	"testing"

	"console_comercial/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.Config{Region: "sa-east-1", AccessKeyID: "local", SecretAccessKey: "local", Endpoint: "http://localhost:8000"}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region %q", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials %+v err=%v", creds, err)
	}
}

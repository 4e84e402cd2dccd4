package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrContractPaymentNotFound        = errors.New("contract payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentContractID       = errors.New("invalid contract_id")
	ErrInvalidPaymentKind             = errors.New("invalid payment kind")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrContractNotSigned              = errors.New("contract not signed")
	ErrInstallmentAlreadyPaid         = errors.New("installment already paid")
	ErrNothingToCharge                = errors.New("installment amount is zero")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings controls the Mercado Pago integration.
//
// In mock mode the gateway is never called and every charge is approved,
// which keeps local and sandbox environments usable without credentials.
type PaymentSettings struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IContractPaymentUseCase charges the installments of a signed contract.
//
// The amount always comes from the stored contract, never from the caller:
// ENTRADA charges DownPayment (or the full price when there is none) and
// RESTANTE charges RemainingAmount.
type IContractPaymentUseCase interface {
	Charge(ctx context.Context, contractID string, kind entities.PaymentKind, mpPayload json.RawMessage) (entities.ContractPayment, error)
	GetByID(ctx context.Context, id string) (entities.ContractPayment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error)
}

type ContractPaymentUseCase struct {
	repo         interfaces.IContractPaymentRepository
	contractRepo interfaces.IContractRepository
	gateway      interfaces.IPaymentGateway
	settings     PaymentSettings
}

var _ IContractPaymentUseCase = (*ContractPaymentUseCase)(nil)

var paymentLog = logging.For("payment.usecase")

func NewContractPaymentUseCase(repo interfaces.IContractPaymentRepository, contractRepo interfaces.IContractRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *ContractPaymentUseCase {
	return &ContractPaymentUseCase{repo: repo, contractRepo: contractRepo, gateway: gateway, settings: settings}
}

func (u *ContractPaymentUseCase) Charge(ctx context.Context, contractID string, kind entities.PaymentKind, mpPayload json.RawMessage) (entities.ContractPayment, error) {
	mockMode := u.settings.MockMode
	contractID = strings.TrimSpace(contractID)
	log := paymentLog.WithFields(logrus.Fields{"contract_id": contractID, "kind": kind, "mock": mockMode})
	log.WithField("payload_len", len(mpPayload)).Info("charge start")

	if contractID == "" {
		return entities.ContractPayment{}, ErrInvalidPaymentContractID
	}
	if kind == "" {
		kind = entities.PaymentKindEntrada
	}
	if kind != entities.PaymentKindEntrada && kind != entities.PaymentKindRestante {
		return entities.ContractPayment{}, ErrInvalidPaymentKind
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("invalid payload")
			return entities.ContractPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.ContractPayment{}, ErrPaymentGatewayNotConfigured
	}

	c, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		log.WithError(err).Error("failed loading contract")
		return entities.ContractPayment{}, err
	}
	if c.ID == "" {
		return entities.ContractPayment{}, ErrContractNotFound
	}
	if !c.IsSigned() {
		log.WithField("status", c.Status).Warn("contract not signed")
		return entities.ContractPayment{}, ErrContractNotSigned
	}
	amount := installmentAmount(c, kind)
	if amount <= 0 {
		return entities.ContractPayment{}, ErrNothingToCharge
	}

	existing, err := u.repo.ListByContractID(ctx, contractID)
	if err != nil {
		return entities.ContractPayment{}, err
	}
	for _, p := range existing {
		if p.Kind == kind && p.Status != entities.PaymentStatusNegado {
			log.WithField("payment_id", p.ID).Warn("installment already charged")
			return entities.ContractPayment{}, ErrInstallmentAlreadyPaid
		}
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.ContractPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap, c.ClientEmail)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Warn("missing payer")
			return entities.ContractPayment{}, ErrInvalidMPPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = contractID + ":" + string(kind)
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Contrato %s (%s)", contractID, kind)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.WithError(err).Warn("payload is not an object; sent as is")
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerStatus, providerResp, err = mockPayment(mpPayload, contractID, amount)
		if err != nil {
			return entities.ContractPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.WithError(err).Error("payment gateway failed")
			return entities.ContractPayment{}, mapGatewayError(err)
		}
	}
	log.WithFields(logrus.Fields{"provider_payment_id": providerPaymentID, "provider_status": providerStatus}).Info("gateway answered")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warn("provider response is not an object")
	}

	p := entities.ContractPayment{
		ID:           providerPaymentID,
		ContractID:   contractID,
		Kind:         kind,
		Amount:       amount,
		Date:         utcNow(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).WithField("payment_id", p.ID).Error("repository create failed")
		return entities.ContractPayment{}, err
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("charge done")
	return created, nil
}

func installmentAmount(c entities.Contract, kind entities.PaymentKind) float64 {
	var v float64
	switch kind {
	case entities.PaymentKindEntrada:
		v = c.DownPayment
		if v <= 0 {
			v = c.TotalPrice
		}
	case entities.PaymentKindRestante:
		v = c.RemainingAmount
		if c.DownPayment <= 0 {
			v = 0
		}
	}
	return math.Round(v*100) / 100
}

func mockPayment(payload json.RawMessage, contractID string, amount float64) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = contractID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	}
	return entities.PaymentStatusPendente
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *ContractPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.settings.AccessToken), "TEST-")
}

// ensurePayerDefaults fills payer.type and, when neither id nor email is set,
// an e-mail: the configured test payer, the sandbox fallback, or the
// contract's client.
func (u *ContractPaymentUseCase) ensurePayerDefaults(m map[string]any, clientEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case strings.TrimSpace(u.settings.TestPayerEmail) != "":
		payer["email"] = strings.TrimSpace(u.settings.TestPayerEmail)
	case u.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	case strings.TrimSpace(clientEmail) != "":
		payer["email"] = strings.TrimSpace(clientEmail)
	}
}

func (u *ContractPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	paymentLog.Debug("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *ContractPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ContractPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractPayment{}, err
	}
	if p.ID == "" {
		return entities.ContractPayment{}, ErrContractPaymentNotFound
	}
	return p, nil
}

func (u *ContractPaymentUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidPaymentContractID
	}
	return u.repo.ListByContractID(ctx, contractID)
}

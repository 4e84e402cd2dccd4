package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "console_comercial/internal/adapter/http/dto/response"
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase"
	"console_comercial/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContractPaymentHandler handles installment charges of signed contracts.
type ContractPaymentHandler struct {
	usecase  usecase.IContractPaymentUseCase
	mockMode bool
}

func NewContractPaymentHandler(uc usecase.IContractPaymentUseCase, mockMode bool) *ContractPaymentHandler {
	return &ContractPaymentHandler{usecase: uc, mockMode: mockMode}
}

// ChargeInstallment godoc
// @Summary      Cobra a entrada ou o restante de um contrato assinado
// @Description  Aceita o payload do Mercado Pago puro ou envelopado em {"kind": "...", "mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        contract_id  path      string                                true   "Contract ID"
// @Param        kind         query     string                                false  "entrada (padrão) ou restante"
// @Param        body         body      request.ContractPaymentCreateRequest  false  "Pagamento"
// @Success      200          {object}  response.ContractPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /payments/{contract_id} [post]
func (h *ContractPaymentHandler) ChargeInstallment(c *gin.Context) {
	contractID := c.Param("contract_id")
	log := logging.For("payment.handler").WithField("contract_id", contractID)

	kind, mpPayload, err := readChargeRequest(c)
	if err != nil {
		if !h.mockMode {
			log.WithError(err).Warn("invalid payload")
			abortWith(c, errInvalidPayload)
			return
		}
		log.WithError(err).Debug("payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}
	if q := strings.TrimSpace(c.Query("kind")); q != "" {
		kind = q
	}
	if kind == "" {
		kind = string(entities.PaymentKindEntrada)
	}

	created, err := h.usecase.Charge(c.Request.Context(), contractID, entities.PaymentKind(strings.ToLower(kind)), mpPayload)
	if err != nil {
		log.WithError(err).Warn("charge failed")
		abortWith(c, mapContractPaymentError(err))
		return
	}
	log.WithFields(logrus.Fields{"payment_id": created.ID, "status": created.Status}).Info("charge done")

	c.JSON(http.StatusOK, response.FromContractPayment(created))
}

// ListPayments godoc
// @Summary  Lista os pagamentos de um contrato
// @Tags     payments
// @Produce  json
// @Param    contract_id  path      string  true  "Contract ID"
// @Success  200          {array}   response.ContractPaymentResponse
// @Router   /payments/{contract_id} [get]
func (h *ContractPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByContractID(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		abortWith(c, mapContractPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractPayments(payments))
}

func (h *ContractPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		abortWith(c, mapContractPaymentError(err))
		return
	}
	if p.ContractID != c.Param("contract_id") {
		abortWith(c, mapContractPaymentError(usecase.ErrContractPaymentNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromContractPayment(p))
}

// readChargeRequest accepts an empty body, a bare Mercado Pago payload or the
// {"kind", "mp_payload"} envelope.
func readChargeRequest(c *gin.Context) (string, json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return "", nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return "", json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return "", nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", nil, errors.New("request body must be a json object")
	}
	var kind string
	if k, ok := envelope["kind"]; ok {
		if err := json.Unmarshal(k, &kind); err != nil {
			return "", nil, errors.New("kind must be a string")
		}
	}
	if wrapped, ok := envelope["mp_payload"]; ok {
		w := strings.TrimSpace(string(wrapped))
		if w == "" || w == "null" {
			return kind, nil, errors.New("mp_payload cannot be empty")
		}
		return kind, wrapped, nil
	}
	if _, ok := envelope["kind"]; ok && len(envelope) == 1 {
		return kind, json.RawMessage("{}"), nil
	}
	return kind, json.RawMessage(raw), nil
}

func mapContractPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentContractID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentKind):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_KIND", "Parcela inválida, use entrada ou restante", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Pagador não encontrado no contexto de teste do Mercado Pago", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Vendedor e pagador de teste incompatíveis", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Provedor de pagamento não autorizado", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewRetryableError("PAYMENT_PROVIDER_UNAVAILABLE", "Provedor de pagamento não configurado", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contrato não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotSigned):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_SIGNED", "O contrato ainda não foi assinado", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Esta parcela já foi paga", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Não há valor a cobrar nesta parcela", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

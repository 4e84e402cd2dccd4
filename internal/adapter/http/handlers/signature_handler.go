package handlers

import (
	"errors"
	"net/http"

	request "console_comercial/internal/adapter/http/dto/request"
	response "console_comercial/internal/adapter/http/dto/response"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase"
	"console_comercial/pkg"

	"github.com/gin-gonic/gin"
)

// SignatureHandler drives the public signing page.
type SignatureHandler struct {
	usecase usecase.ISignatureUseCase
}

func NewSignatureHandler(uc usecase.ISignatureUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

// CapturePreview godoc
// @Summary  Registra o desenho da assinatura para pré-visualização
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    identifier  path      string                    true  "Slug ou token público"
// @Param    body        body      request.SignatureRequest  true  "Assinatura"
// @Success  200         {object}  response.PublicContractResponse
// @Failure  400         {object}  pkg.HTTPError
// @Failure  409         {object}  pkg.HTTPError
// @Router   /contrato/{identifier}/signature/preview [post]
func (h *SignatureHandler) CapturePreview(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	contract, err := h.usecase.CapturePreview(c.Request.Context(), c.Param("identifier"), payload.ToInput())
	if err != nil {
		abortWith(c, mapSignatureError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicContract(contract))
}

// ConfirmSignature godoc
// @Summary      Confirma a assinatura
// @Description  O corpo é opcional quando a pré-visualização já foi registrada.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        identifier  path      string                    true   "Slug ou token público"
// @Param        body        body      request.SignatureRequest  false  "Assinatura"
// @Success      200         {object}  response.PublicContractResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      503         {object}  pkg.HTTPError
// @Router       /contrato/{identifier}/signature/confirm [post]
func (h *SignatureHandler) ConfirmSignature(c *gin.Context) {
	var payload request.SignatureRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}
	in := usecase.ConfirmInput{
		SignatureInput: payload.ToInput(),
		ClientHint:     c.ClientIP(),
		AgentString:    c.Request.UserAgent(),
	}
	identifier := c.Param("identifier")
	contract, err := h.usecase.Confirm(c.Request.Context(), identifier, in)
	if err != nil {
		logging.For("signature.handler").WithError(err).WithField("identifier", identifier).Warn("confirm failed")
		abortWith(c, mapSignatureError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicContract(contract))
}

// EditSignature godoc
// @Summary  Descarta a pré-visualização para assinar novamente
// @Tags     public
// @Produce  json
// @Param    identifier  path      string  true  "Slug ou token público"
// @Success  200         {object}  response.PublicContractResponse
// @Failure  409         {object}  pkg.HTTPError
// @Router   /contrato/{identifier}/signature/preview [delete]
func (h *SignatureHandler) EditSignature(c *gin.Context) {
	contract, err := h.usecase.EditSignature(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		abortWith(c, mapSignatureError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicContract(contract))
}

var signatureFieldMessages = map[string]string{
	"drawing":      "Desenhe sua assinatura antes de continuar",
	"signer_name":  "Informe o nome de quem assina",
	"signer_email": "Informe um e-mail válido",
}

func mapSignatureError(err error) *pkg.AppError {
	var verr *usecase.SignatureValidationError
	if errors.As(err, &verr) {
		msg, ok := signatureFieldMessages[verr.Field]
		if !ok {
			msg = "Assinatura inválida"
		}
		return pkg.NewDomainError("INVALID_SIGNATURE", msg, err, http.StatusBadRequest)
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contrato não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("CONTRACT_ALREADY_SIGNED", "Este contrato já foi assinado", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignatureConflict):
		return pkg.NewDomainErrorSimple("SIGNATURE_CONFLICT", "O contrato mudou desde que foi aberto, recarregue a página", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntegrityMismatch):
		return pkg.NewDomainErrorSimple("INTEGRITY_MISMATCH", "O conteúdo do contrato não confere com o código de integridade", http.StatusConflict)
	case errors.Is(err, usecase.ErrFinalizationFailed):
		return pkg.NewRetryableError("SIGNATURE_FINALIZATION_FAILED", "Não foi possível concluir a assinatura, tente novamente", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

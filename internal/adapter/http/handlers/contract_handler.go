package handlers

import (
	"context"
	"errors"
	"net/http"

	request "console_comercial/internal/adapter/http/dto/request"
	response "console_comercial/internal/adapter/http/dto/response"
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/template"
	"console_comercial/internal/domain/versioning"
	"console_comercial/internal/usecase"
	"console_comercial/pkg"

	"github.com/gin-gonic/gin"
)

// ContractHandler serves both the back-office contract routes and the public
// read-only view.
type ContractHandler struct {
	usecase usecase.IContractUseCase
	origin  string
}

func NewContractHandler(uc usecase.IContractUseCase, publicOrigin string) *ContractHandler {
	return &ContractHandler{usecase: uc, origin: publicOrigin}
}

func (h *ContractHandler) respond(c *gin.Context, status int, contract entities.Contract) {
	c.JSON(status, response.FromContract(contract, template.ContractLink(h.origin, contract)))
}

// CreateContract godoc
// @Summary      Gera o contrato de uma proposta aprovada
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body  body      request.ContractCreateRequest  true  "Contrato"
// @Success      201   {object}  response.ContractResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, errInvalidDate)
		return
	}
	contract, err := h.usecase.CreateFromProposal(c.Request.Context(), in)
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	h.respond(c, http.StatusCreated, contract)
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	out := make([]response.ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		out = append(out, response.FromContract(contract, template.ContractLink(h.origin, contract)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	h.respond(c, http.StatusOK, contract)
}

// UpdateTerms godoc
// @Summary      Edita os termos do contrato
// @Description  Alterações materiais em contratos já enviados incrementam a versão.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Contract ID"
// @Param        body  body      request.ContractTermsRequest  true  "Termos"
// @Success      200   {object}  response.ContractResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /contracts/{id}/terms [patch]
func (h *ContractHandler) UpdateTerms(c *gin.Context) {
	h.withTerms(c, http.StatusOK, h.usecase.UpdateTerms)
}

// AmendContract godoc
// @Summary  Cria um aditivo de um contrato assinado
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path      string                        true  "Contract ID"
// @Param    body  body      request.ContractTermsRequest  true  "Novos termos"
// @Success  201   {object}  response.ContractResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /contracts/{id}/amend [post]
func (h *ContractHandler) AmendContract(c *gin.Context) {
	h.withTerms(c, http.StatusCreated, h.usecase.Amend)
}

func (h *ContractHandler) withTerms(
	c *gin.Context,
	status int,
	apply func(ctx context.Context, id string, upd versioning.TermsUpdate) (entities.Contract, error),
) {
	var payload request.ContractTermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		abortWith(c, errInvalidDate)
		return
	}
	contract, err := apply(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	h.respond(c, status, contract)
}

func (h *ContractHandler) SendContract(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

func (h *ContractHandler) CancelContract(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *ContractHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (entities.Contract, error)) {
	contract, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	h.respond(c, http.StatusOK, contract)
}

func (h *ContractHandler) RenderContract(c *gin.Context) {
	id := c.Param("id")
	content, err := h.usecase.Render(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.RenderResponse{ID: id, Content: content})
}

// GetPublicContract godoc
// @Summary  Visualização pública do contrato
// @Tags     public
// @Produce  json
// @Param    identifier  path      string  true  "Slug ou token público"
// @Success  200         {object}  response.PublicContractResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /contrato/{identifier} [get]
func (h *ContractHandler) GetPublicContract(c *gin.Context) {
	contract, err := h.usecase.GetPublic(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		abortWith(c, mapContractError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicContract(contract))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidContractValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contrato não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposta não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_APPROVED", "A proposta ainda não foi aprovada", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidContractTransition):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_TRANSITION", "Operação não permitida no status atual do contrato", http.StatusConflict)
	case errors.Is(err, versioning.ErrDocumentLocked):
		return pkg.NewDomainErrorSimple("CONTRACT_LOCKED", "Contrato assinado não pode ser editado, crie um aditivo", http.StatusConflict)
	case errors.Is(err, versioning.ErrNotAmendable):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_AMENDABLE", "Somente contratos assinados podem receber aditivo", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractConflict):
		return pkg.NewDomainErrorSimple("CONTRACT_CONFLICT", "O contrato foi alterado por outra pessoa, recarregue a página", http.StatusConflict)
	default:
		return internalError(err)
	}
}

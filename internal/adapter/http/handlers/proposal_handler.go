package handlers

import (
	"errors"
	"net/http"

	request "console_comercial/internal/adapter/http/dto/request"
	response "console_comercial/internal/adapter/http/dto/response"
	"console_comercial/internal/usecase"
	"console_comercial/pkg"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Cria uma proposta comercial
// @Description  Campos em branco são preenchidos a partir da solicitação de origem.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProposalCreateRequest  true  "Proposta"
// @Success      201   {object}  response.ProposalResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, errInvalidDate)
		return
	}
	p, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		abortWith(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(ps))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// UpdateProposal godoc
// @Summary  Atualiza cliente, valor, status ou corpo da proposta
// @Tags     proposals
// @Accept   json
// @Produce  json
// @Param    id    path      string                         true  "Proposal ID"
// @Param    body  body      request.ProposalUpdateRequest  true  "Campos alterados"
// @Success  200   {object}  response.ProposalResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /proposals/{id} [patch]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		abortWith(c, errInvalidDate)
		return
	}
	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWith(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) RenderProposal(c *gin.Context) {
	id := c.Param("id")
	content, err := h.usecase.Render(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.RenderResponse{ID: id, Content: content})
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposalValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProposalStatus):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_STATUS", "Status de proposta inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProposalClient):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_CLIENT", "Informe o nome do cliente", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposta não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Solicitação não encontrada", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

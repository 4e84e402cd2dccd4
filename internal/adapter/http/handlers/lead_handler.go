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

// LeadHandler serves the inbound quote requests.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary      Registra uma solicitação de orçamento
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      request.LeadCreateRequest  true  "Formulário"
// @Success      201   {object}  response.LeadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, errInvalidDate)
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		abortWith(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// ListLeads godoc
// @Summary  Lista solicitações de orçamento
// @Tags     leads
// @Produce  json
// @Success  200  {array}  response.LeadResponse
// @Router   /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// UpdateLeadStatus godoc
// @Summary  Altera o status de uma solicitação
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    id    path      string                     true  "Lead ID"
// @Param    body  body      request.LeadStatusRequest  true  "Novo status"
// @Success  200   {object}  response.LeadResponse
// @Failure  404   {object}  pkg.HTTPError
// @Router   /leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	id := c.Param("id")
	lead, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ToStatus())
	if err != nil {
		logging.For("lead.handler").WithError(err).WithField("lead_id", id).Warn("status update failed")
		abortWith(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_STATUS", "Status de solicitação inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Solicitação não encontrada", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

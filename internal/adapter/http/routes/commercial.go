package routes

import (
	"console_comercial/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads     = "/leads"
	PathProposals = "/proposals"
	PathContracts = "/contracts"
)

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", h.CreateLead)
		leads.GET("", h.ListLeads)
		leads.GET("/:id", h.GetLead)
		leads.PATCH("/:id/status", h.UpdateLeadStatus)
	}
}

func addProposalRoutes(rg *gin.RouterGroup, h *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", h.CreateProposal)
		proposals.GET("", h.ListProposals)
		proposals.GET("/:id", h.GetProposal)
		proposals.PATCH("/:id", h.UpdateProposal)
		proposals.GET("/:id/render", h.RenderProposal)
	}
}

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", h.CreateContract)
		contracts.GET("", h.ListContracts)
		contracts.GET("/:id", h.GetContract)
		contracts.PATCH("/:id/terms", h.UpdateTerms)
		contracts.POST("/:id/send", h.SendContract)
		contracts.POST("/:id/cancel", h.CancelContract)
		contracts.POST("/:id/amend", h.AmendContract)
		contracts.GET("/:id/render", h.RenderContract)
	}
}

package routes

import (
	"console_comercial/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFunnel   = "/funnel"
	PathPayments = "/payments"
)

func addFunnelRoutes(rg *gin.RouterGroup, h *handlers.FunnelHandler) {
	funnel := rg.Group(PathFunnel)
	{
		funnel.GET("", h.GetPipeline)
		funnel.GET("/metrics", h.GetMetrics)
		funnel.GET("/stream", h.StreamPipeline)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.ContractPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:contract_id", h.ChargeInstallment)
		payments.GET("/:contract_id", h.ListPayments)
		payments.GET("/:contract_id/:payment_id", h.GetPayment)
	}
}

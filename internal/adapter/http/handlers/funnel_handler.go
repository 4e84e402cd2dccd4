package handlers

import (
	"errors"
	"net/http"

	response "console_comercial/internal/adapter/http/dto/response"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase"
	"console_comercial/pkg"

	"github.com/gin-gonic/gin"
)

type FunnelHandler struct {
	usecase usecase.IFunnelUseCase
}

func NewFunnelHandler(uc usecase.IFunnelUseCase) *FunnelHandler {
	return &FunnelHandler{usecase: uc}
}

// GetPipeline godoc
// @Summary  Funil comercial reconciliado
// @Tags     funnel
// @Produce  json
// @Success  200  {object}  response.PipelineResponse
// @Router   /funnel [get]
func (h *FunnelHandler) GetPipeline(c *gin.Context) {
	result, err := h.usecase.Pipeline(c.Request.Context())
	if err != nil {
		abortWith(c, mapFunnelError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPipeline(result))
}

// GetMetrics godoc
// @Summary  Indicadores financeiros do funil
// @Tags     funnel
// @Produce  json
// @Success  200  {object}  entities.FinancialMetrics
// @Router   /funnel/metrics [get]
func (h *FunnelHandler) GetMetrics(c *gin.Context) {
	m, err := h.usecase.Metrics(c.Request.Context())
	if err != nil {
		abortWith(c, mapFunnelError(err))
		return
	}
	c.JSON(http.StatusOK, m)
}

// StreamPipeline godoc
// @Summary      Funil ao vivo (server-sent events)
// @Description  Emite um evento "funnel" na conexão e a cada alteração de leads, propostas ou contratos.
// @Tags         funnel
// @Produce      text/event-stream
// @Success      200  {object}  response.FunnelEventResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /funnel/stream [get]
func (h *FunnelHandler) StreamPipeline(c *gin.Context) {
	ctx := c.Request.Context()
	views := make(chan usecase.FunnelView)
	done := make(chan error, 1)
	go func() {
		done <- h.usecase.Watch(ctx, func(v usecase.FunnelView) {
			select {
			case views <- v:
			case <-ctx.Done():
			}
		})
	}()

	started := false
	for {
		select {
		case v := <-views:
			if !started {
				c.Header("Content-Type", "text/event-stream")
				c.Header("Cache-Control", "no-cache")
				c.Header("Connection", "keep-alive")
				c.Status(http.StatusOK)
				started = true
			}
			c.SSEvent("funnel", response.FromFunnelView(v))
			c.Writer.Flush()
		case err := <-done:
			if err != nil && !started {
				abortWith(c, mapFunnelError(err))
				return
			}
			if err != nil {
				logging.For("funnel.handler").WithError(err).Warn("stream ended")
			}
			return
		case <-ctx.Done():
			return
		}
	}
}

func mapFunnelError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChangeFeedUnavailable):
		return pkg.NewDomainErrorSimple("FUNNEL_STREAM_UNAVAILABLE", "Atualização em tempo real indisponível", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

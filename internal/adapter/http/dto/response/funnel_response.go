package response

import (
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/funnel"
	"console_comercial/internal/usecase"
)

type FunnelStageResponse struct {
	ID    string                `json:"id"`
	Count int                   `json:"count"`
	Items []entities.FunnelItem `json:"items"`
}

// PipelineResponse lists the stages in pipeline order.
type PipelineResponse struct {
	Stages  []FunnelStageResponse `json:"stages"`
	Total   int                   `json:"total"`
	Orphans entities.OrphanStats  `json:"orphans"`
}

func FromPipeline(r funnel.Result) PipelineResponse {
	out := PipelineResponse{
		Stages:  make([]FunnelStageResponse, 0, len(entities.FunnelStages)),
		Total:   r.Pipeline.Count(),
		Orphans: r.Orphans,
	}
	for _, stage := range entities.FunnelStages {
		items := r.Pipeline[stage]
		if items == nil {
			items = []entities.FunnelItem{}
		}
		out.Stages = append(out.Stages, FunnelStageResponse{ID: string(stage), Count: len(items), Items: items})
	}
	return out
}

// FunnelEventResponse is one server-sent event of the live funnel stream.
type FunnelEventResponse struct {
	Pipeline    PipelineResponse          `json:"pipeline"`
	Metrics     entities.FinancialMetrics `json:"metrics"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

func FromFunnelView(v usecase.FunnelView) FunnelEventResponse {
	return FunnelEventResponse{
		Pipeline:    FromPipeline(v.Result),
		Metrics:     v.Metrics,
		GeneratedAt: v.GeneratedAt,
	}
}

package entities

import "time"

// FunnelStage identifies one of the seven pipeline buckets. The order of
// FunnelStages is the pipeline order.
type FunnelStage string

const (
	StageLeadCaptado      FunnelStage = "lead-captado"
	StageContatoRealizado FunnelStage = "contato-realizado"
	StageOrcamentoEnviado FunnelStage = "orcamento-enviado"
	StageEmNegociacao     FunnelStage = "em-negociacao"
	StageProntoContrato   FunnelStage = "pronto-contrato"
	StageContratoAssinado FunnelStage = "contrato-assinado"
	StagePerdido          FunnelStage = "perdido"
)

var FunnelStages = []FunnelStage{
	StageLeadCaptado,
	StageContatoRealizado,
	StageOrcamentoEnviado,
	StageEmNegociacao,
	StageProntoContrato,
	StageContratoAssinado,
	StagePerdido,
}

// FunnelItemType is the highest source stage merged into an item.
type FunnelItemType string

const (
	FunnelTypeQuote    FunnelItemType = "quote"
	FunnelTypeProposal FunnelItemType = "proposal"
	FunnelTypeContract FunnelItemType = "contract"
)

// Rank orders item types so merges never move an item backwards.
func (t FunnelItemType) Rank() int {
	switch t {
	case FunnelTypeQuote:
		return 1
	case FunnelTypeProposal:
		return 2
	case FunnelTypeContract:
		return 3
	}
	return 0
}

// FunnelItem is the reconciled view of one client/event. It is derived on
// every read and never persisted.
type FunnelItem struct {
	ID            string         `json:"id"`
	OriginalID    string         `json:"original_id"`
	LeadID        string         `json:"lead_id,omitempty"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	EventType     string         `json:"event_type"`
	EventDate     *time.Time     `json:"event_date,omitempty"`
	EventLocation string         `json:"event_location"`
	Status        string         `json:"status"`
	LeadStatus    string         `json:"lead_status,omitempty"`
	Type          FunnelItemType `json:"type"`
	TotalPrice    *float64       `json:"total_price,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Pipeline maps every stage to its items, newest first. All seven stages are
// always present.
type Pipeline map[FunnelStage][]FunnelItem

// Count returns the number of items across all stages.
func (p Pipeline) Count() int {
	n := 0
	for _, items := range p {
		n += len(items)
	}
	return n
}

// OrphanStats counts proposals and contracts that could not be traced back to
// a lead.
type OrphanStats struct {
	Proposals  int `json:"proposals"`
	Contracts  int `json:"contracts"`
	Standalone int `json:"standalone"`
}

func (o OrphanStats) Total() int {
	return o.Proposals + o.Contracts
}

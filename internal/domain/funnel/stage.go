package funnel

import (
	"sort"

	"console_comercial/internal/domain/entities"
)

// Classify places an item in exactly one stage. The first matching rule wins;
// anything unmatched lands in lead-captado.
func Classify(item entities.FunnelItem) entities.FunnelStage {
	if item.Status == string(entities.LeadStatusPerdido) || item.LeadStatus == string(entities.LeadStatusPerdido) {
		return entities.StagePerdido
	}

	switch item.Type {
	case entities.FunnelTypeQuote:
		switch entities.LeadStatus(item.Status) {
		case entities.LeadStatusAguardando, entities.LeadStatusNovo:
			return entities.StageLeadCaptado
		case entities.LeadStatusContatado:
			return entities.StageContatoRealizado
		}
	case entities.FunnelTypeProposal:
		switch entities.ProposalStatus(item.Status) {
		case entities.ProposalStatusDraft, entities.ProposalStatusRascunho, entities.ProposalStatusEnviado:
			return entities.StageOrcamentoEnviado
		case entities.ProposalStatusNegociacao:
			return entities.StageEmNegociacao
		case entities.ProposalStatusAprovado:
			return entities.StageProntoContrato
		}
	case entities.FunnelTypeContract:
		switch entities.ContractStatus(item.Status) {
		case entities.ContractStatusDraft, entities.ContractStatusEnviado, entities.ContractStatusEmAndamento,
			entities.ContractStatusSent, entities.ContractStatusDraftSigned:
			return entities.StageProntoContrato
		case entities.ContractStatusAssinado, entities.ContractStatusSigned, entities.ContractStatusCompleted:
			return entities.StageContratoAssinado
		}
	}
	return entities.StageLeadCaptado
}

// Group buckets items by stage, newest first. Ties are broken by id so the
// output is stable across runs.
func Group(items []entities.FunnelItem) entities.Pipeline {
	out := make(entities.Pipeline, len(entities.FunnelStages))
	for _, stage := range entities.FunnelStages {
		out[stage] = []entities.FunnelItem{}
	}
	for _, item := range items {
		stage := Classify(item)
		out[stage] = append(out[stage], item)
	}
	for stage := range out {
		list := out[stage]
		sort.SliceStable(list, func(i, j int) bool {
			if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
				return list[i].CreatedAt.After(list[j].CreatedAt)
			}
			return list[i].ID < list[j].ID
		})
	}
	return out
}

// Package metrics computes the financial rollup of the commercial funnel.
// It works on the raw record sets, not on the reconciled pipeline.
package metrics

import (
	"math"

	"console_comercial/internal/domain/entities"
)

// Aggregate never divides by zero: with no signed contracts the average ticket
// is 0 and with no leads the conversion rate is 0.
func Aggregate(leads []entities.Lead, proposals []entities.Proposal, contracts []entities.Contract) entities.FinancialMetrics {
	var m entities.FinancialMetrics
	m.TotalLeads = len(leads)

	for _, raw := range proposals {
		p := raw.Normalize()
		if p.Status == entities.ProposalStatusEnviado {
			m.OpenProposalsCount++
			m.OpenProposalsValue += p.TotalPrice
		}
	}

	for _, raw := range contracts {
		c := raw.Normalize()
		switch {
		case IsSignedStatus(c.Status):
			m.SignedContractsCount++
			m.SignedContractsValue += c.TotalPrice
		case IsInProgressStatus(c.Status):
			m.ContractsInProgress++
		}
	}

	if m.SignedContractsCount > 0 {
		m.AverageTicket = m.SignedContractsValue / float64(m.SignedContractsCount)
	}
	if m.TotalLeads > 0 {
		m.ConversionRatePercent = float64(m.SignedContractsCount) / float64(m.TotalLeads) * 100
	}

	m.OpenProposalsValue = roundCents(m.OpenProposalsValue)
	m.SignedContractsValue = roundCents(m.SignedContractsValue)
	m.AverageTicket = roundCents(m.AverageTicket)
	m.ConversionRatePercent = roundCents(m.ConversionRatePercent)
	return m
}

func IsSignedStatus(s entities.ContractStatus) bool {
	switch s {
	case entities.ContractStatusSigned, entities.ContractStatusCompleted, entities.ContractStatusAssinado:
		return true
	}
	return false
}

func IsInProgressStatus(s entities.ContractStatus) bool {
	switch s {
	case entities.ContractStatusSent, entities.ContractStatusDraftSigned, entities.ContractStatusEnviado, entities.ContractStatusEmAndamento:
		return true
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

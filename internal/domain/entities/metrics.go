package entities

// FinancialMetrics is the funnel-wide rollup computed from the raw record
// sets.
type FinancialMetrics struct {
	OpenProposalsCount    int     `json:"open_proposals_count"`
	OpenProposalsValue    float64 `json:"open_proposals_value"`
	ContractsInProgress   int     `json:"contracts_in_progress"`
	SignedContractsCount  int     `json:"signed_contracts_count"`
	SignedContractsValue  float64 `json:"signed_contracts_value"`
	AverageTicket         float64 `json:"average_ticket"`
	ConversionRatePercent float64 `json:"conversion_rate_percent"`
	TotalLeads            int     `json:"total_leads"`
}

package entities

import (
	"strings"
	"time"
)

type ProposalStatus string

const (
	ProposalStatusDraft      ProposalStatus = "draft"
	ProposalStatusRascunho   ProposalStatus = "rascunho"
	ProposalStatusEnviado    ProposalStatus = "enviado"
	ProposalStatusNegociacao ProposalStatus = "negociacao"
	ProposalStatusAprovado   ProposalStatus = "aprovado"
	ProposalStatusRecusado   ProposalStatus = "recusado"
)

// Proposal is a priced offer (proposta comercial) sent to a lead.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_request_id-index): quote_request_id
//
// Client fields may diverge from the originating lead: staff edit them while
// negotiating. QuoteRequestID is empty when the proposal was created without a
// lead.
type Proposal struct {
	ID             string         `json:"id"`
	QuoteRequestID string         `json:"quote_request_id,omitempty"`
	ClientName     string         `json:"client_name"`
	ClientEmail    string         `json:"client_email"`
	ClientPhone    string         `json:"client_phone"`
	EventType      string         `json:"event_type"`
	EventDate      *time.Time     `json:"event_date,omitempty"`
	EventLocation  string         `json:"event_location"`
	Status         ProposalStatus `json:"status"`
	TotalPrice     float64        `json:"total_price"`
	Body           string         `json:"body,omitempty"`
	ContentHash    string         `json:"content_hash,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (p Proposal) Normalize() Proposal {
	p.ID = strings.TrimSpace(p.ID)
	p.QuoteRequestID = strings.TrimSpace(p.QuoteRequestID)
	p.ClientName = strings.TrimSpace(p.ClientName)
	p.ClientEmail = NormalizeEmail(p.ClientEmail)
	p.ClientPhone = strings.TrimSpace(p.ClientPhone)
	p.EventType = strings.TrimSpace(p.EventType)
	p.EventLocation = strings.TrimSpace(p.EventLocation)
	p.Status = ProposalStatus(strings.ToLower(strings.TrimSpace(string(p.Status))))
	if p.TotalPrice < 0 {
		p.TotalPrice = 0
	}
	return p
}

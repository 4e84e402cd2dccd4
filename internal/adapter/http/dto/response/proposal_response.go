package response

import (
	"time"

	"console_comercial/internal/domain/entities"
)

type ProposalResponse struct {
	ID             string     `json:"id"`
	QuoteRequestID string     `json:"quote_request_id,omitempty"`
	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email"`
	ClientPhone    string     `json:"client_phone"`
	EventType      string     `json:"event_type"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	EventLocation  string     `json:"event_location"`
	Status         string     `json:"status"`
	TotalPrice     float64    `json:"total_price"`
	Body           string     `json:"body,omitempty"`
	ContentHash    string     `json:"content_hash,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID,
		QuoteRequestID: p.QuoteRequestID,
		ClientName:     p.ClientName,
		ClientEmail:    p.ClientEmail,
		ClientPhone:    p.ClientPhone,
		EventType:      p.EventType,
		EventDate:      p.EventDate,
		EventLocation:  p.EventLocation,
		Status:         string(p.Status),
		TotalPrice:     p.TotalPrice,
		Body:           p.Body,
		ContentHash:    p.ContentHash,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

// RenderResponse carries a materialized document body.
type RenderResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

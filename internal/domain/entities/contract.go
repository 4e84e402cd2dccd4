package entities

import (
	"strings"
	"time"
)

type ContractStatus string

const (
	ContractStatusDraft       ContractStatus = "draft"
	ContractStatusSent        ContractStatus = "sent"
	ContractStatusDraftSigned ContractStatus = "draft_signed"
	ContractStatusSigned      ContractStatus = "signed"
	ContractStatusCompleted   ContractStatus = "completed"
	ContractStatusCancelled   ContractStatus = "cancelled"

	// Legacy pt-BR values still present in older records.
	ContractStatusEnviado     ContractStatus = "enviado"
	ContractStatusEmAndamento ContractStatus = "em_andamento"
	ContractStatusAssinado    ContractStatus = "assinado"
)

// Contract is the binding document generated from an approved proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
//   - GSI2 (public_token-index): public_token
//
// Versioning:
//   - Version starts at 1 and only grows; VersionTimestamp moves with it.
//   - Revision is the optimistic-concurrency tag, incremented on every write.
type Contract struct {
	ID             string `json:"id"`
	ProposalID     string `json:"proposal_id,omitempty"`
	QuoteRequestID string `json:"quote_request_id,omitempty"`
	SupersedesID   string `json:"supersedes_id,omitempty"`
	Slug           string `json:"slug,omitempty"`
	PublicToken    string `json:"public_token"`

	ClientName          string `json:"client_name"`
	ClientEmail         string `json:"client_email"`
	ClientPhone         string `json:"client_phone"`
	ClientAddress       string `json:"client_address,omitempty"`
	ClientProfession    string `json:"client_profession,omitempty"`
	ClientMaritalStatus string `json:"client_marital_status,omitempty"`

	EventType     string     `json:"event_type"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	EventTime     string     `json:"event_time,omitempty"`
	EventLocation string     `json:"event_location"`

	TotalPrice       float64    `json:"total_price"`
	DownPayment      float64    `json:"down_payment"`
	DownPaymentDate  *time.Time `json:"down_payment_date,omitempty"`
	RemainingAmount  float64    `json:"remaining_amount"`
	RemainingDueDate *time.Time `json:"remaining_due_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	Body        string `json:"body,omitempty"`
	Content     string `json:"content,omitempty"`
	ContentHash string `json:"content_hash,omitempty"`

	Status           ContractStatus `json:"status"`
	Version          int            `json:"version"`
	VersionTimestamp time.Time      `json:"version_timestamp"`
	Revision         int64          `json:"revision"`

	PreviewSignatureURL string     `json:"preview_signature_url,omitempty"`
	SignatureDrawnAt    *time.Time `json:"signature_drawn_at,omitempty"`
	SignerName          string     `json:"signer_name,omitempty"`
	SignerEmail         string     `json:"signer_email,omitempty"`
	SignerIP            string     `json:"signer_ip,omitempty"`
	SignerUserAgent     string     `json:"signer_user_agent,omitempty"`
	SignedAt            *time.Time `json:"signed_at,omitempty"`
	SentAt              *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Contract) Normalize() Contract {
	c.ID = strings.TrimSpace(c.ID)
	c.ProposalID = strings.TrimSpace(c.ProposalID)
	c.QuoteRequestID = strings.TrimSpace(c.QuoteRequestID)
	c.ClientName = strings.TrimSpace(c.ClientName)
	c.ClientEmail = NormalizeEmail(c.ClientEmail)
	c.ClientPhone = strings.TrimSpace(c.ClientPhone)
	c.EventType = strings.TrimSpace(c.EventType)
	c.EventLocation = strings.TrimSpace(c.EventLocation)
	c.Status = ContractStatus(strings.ToLower(strings.TrimSpace(string(c.Status))))
	if c.Version < 1 {
		c.Version = 1
	}
	return c
}

// PublicIdentifier prefers the human-readable slug over the opaque token.
func (c Contract) PublicIdentifier() string {
	if s := strings.TrimSpace(c.Slug); s != "" {
		return s
	}
	return strings.TrimSpace(c.PublicToken)
}

// IsLocked reports whether the contract can no longer be edited in place.
func (c Contract) IsLocked() bool {
	switch c.Status {
	case ContractStatusSigned, ContractStatusCompleted, ContractStatusCancelled, ContractStatusAssinado:
		return true
	}
	return false
}

func (c Contract) IsSigned() bool {
	switch c.Status {
	case ContractStatusSigned, ContractStatusCompleted, ContractStatusAssinado:
		return true
	}
	return false
}

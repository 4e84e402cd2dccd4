package response

import (
	"time"

	"console_comercial/internal/domain/entities"
)

// ContractResponse is the back-office view of a contract.
type ContractResponse struct {
	ID             string `json:"id"`
	ProposalID     string `json:"proposal_id,omitempty"`
	QuoteRequestID string `json:"quote_request_id,omitempty"`
	SupersedesID   string `json:"supersedes_id,omitempty"`
	Slug           string `json:"slug,omitempty"`
	PublicToken    string `json:"public_token"`
	Link           string `json:"link,omitempty"`

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

	Status           string    `json:"status"`
	Version          int       `json:"version"`
	VersionTimestamp time.Time `json:"version_timestamp"`
	Revision         int64     `json:"revision"`

	Signature *SignatureResponse `json:"signature,omitempty"`

	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SignatureResponse groups the audit trail of a signature, including a
// preview not yet confirmed.
type SignatureResponse struct {
	PreviewURL  string     `json:"preview_url,omitempty"`
	DrawnAt     *time.Time `json:"drawn_at,omitempty"`
	SignerName  string     `json:"signer_name,omitempty"`
	SignerEmail string     `json:"signer_email,omitempty"`
	SignerIP    string     `json:"signer_ip,omitempty"`
	UserAgent   string     `json:"user_agent,omitempty"`
	SignedAt    *time.Time `json:"signed_at,omitempty"`
}

func signatureOf(c entities.Contract) *SignatureResponse {
	if c.PreviewSignatureURL == "" && c.SignedAt == nil {
		return nil
	}
	return &SignatureResponse{
		PreviewURL:  c.PreviewSignatureURL,
		DrawnAt:     c.SignatureDrawnAt,
		SignerName:  c.SignerName,
		SignerEmail: c.SignerEmail,
		SignerIP:    c.SignerIP,
		UserAgent:   c.SignerUserAgent,
		SignedAt:    c.SignedAt,
	}
}

// FromContract maps a contract; link is the public URL, empty when unknown.
func FromContract(c entities.Contract, link string) ContractResponse {
	return ContractResponse{
		ID:                  c.ID,
		ProposalID:          c.ProposalID,
		QuoteRequestID:      c.QuoteRequestID,
		SupersedesID:        c.SupersedesID,
		Slug:                c.Slug,
		PublicToken:         c.PublicToken,
		Link:                link,
		ClientName:          c.ClientName,
		ClientEmail:         c.ClientEmail,
		ClientPhone:         c.ClientPhone,
		ClientAddress:       c.ClientAddress,
		ClientProfession:    c.ClientProfession,
		ClientMaritalStatus: c.ClientMaritalStatus,
		EventType:           c.EventType,
		EventDate:           c.EventDate,
		EventTime:           c.EventTime,
		EventLocation:       c.EventLocation,
		TotalPrice:          c.TotalPrice,
		DownPayment:         c.DownPayment,
		DownPaymentDate:     c.DownPaymentDate,
		RemainingAmount:     c.RemainingAmount,
		RemainingDueDate:    c.RemainingDueDate,
		Notes:               c.Notes,
		Body:                c.Body,
		Content:             c.Content,
		ContentHash:         c.ContentHash,
		Status:              string(c.Status),
		Version:             c.Version,
		VersionTimestamp:    c.VersionTimestamp,
		Revision:            c.Revision,
		Signature:           signatureOf(c),
		SentAt:              c.SentAt,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// PublicContractResponse is what the signer sees. Internal ids, the raw
// template and the revision stay out of it.
type PublicContractResponse struct {
	Identifier       string             `json:"identifier"`
	ClientName       string             `json:"client_name"`
	EventType        string             `json:"event_type"`
	EventDate        *time.Time         `json:"event_date,omitempty"`
	TotalPrice       float64            `json:"total_price"`
	Content          string             `json:"content"`
	ContentHash      string             `json:"content_hash,omitempty"`
	Status           string             `json:"status"`
	Version          int                `json:"version"`
	VersionTimestamp time.Time          `json:"version_timestamp"`
	Signature        *SignatureResponse `json:"signature,omitempty"`
}

func FromPublicContract(c entities.Contract) PublicContractResponse {
	return PublicContractResponse{
		Identifier:       c.PublicIdentifier(),
		ClientName:       c.ClientName,
		EventType:        c.EventType,
		EventDate:        c.EventDate,
		TotalPrice:       c.TotalPrice,
		Content:          c.Content,
		ContentHash:      c.ContentHash,
		Status:           string(c.Status),
		Version:          c.Version,
		VersionTimestamp: c.VersionTimestamp,
		Signature:        signatureOf(c),
	}
}

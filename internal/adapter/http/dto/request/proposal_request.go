package request

import (
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase"
)

type ProposalCreateRequest struct {
	QuoteRequestID string  `json:"quote_request_id"`
	ClientName     string  `json:"client_name"`
	ClientEmail    string  `json:"client_email" binding:"omitempty,email"`
	ClientPhone    string  `json:"client_phone"`
	EventType      string  `json:"event_type"`
	EventDate      *string `json:"event_date"`
	EventLocation  string  `json:"event_location"`
	TotalPrice     float64 `json:"total_price" binding:"gte=0"`
	Body           string  `json:"body"`
}

func (r ProposalCreateRequest) ToInput() (usecase.ProposalInput, error) {
	date, err := parseDate(r.EventDate)
	if err != nil {
		return usecase.ProposalInput{}, err
	}
	return usecase.ProposalInput{
		QuoteRequestID: r.QuoteRequestID,
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		EventType:      r.EventType,
		EventDate:      date,
		EventLocation:  r.EventLocation,
		TotalPrice:     r.TotalPrice,
		Body:           r.Body,
	}, nil
}

// ProposalUpdateRequest is a partial update; absent fields are left as they
// are.
type ProposalUpdateRequest struct {
	ClientName    *string  `json:"client_name"`
	ClientEmail   *string  `json:"client_email" binding:"omitempty,email"`
	ClientPhone   *string  `json:"client_phone"`
	EventType     *string  `json:"event_type"`
	EventDate     *string  `json:"event_date"`
	EventLocation *string  `json:"event_location"`
	Status        *string  `json:"status"`
	TotalPrice    *float64 `json:"total_price" binding:"omitempty,gte=0"`
	Body          *string  `json:"body"`
}

func (r ProposalUpdateRequest) ToUpdate() (usecase.ProposalUpdate, error) {
	date, err := parseDate(r.EventDate)
	if err != nil {
		return usecase.ProposalUpdate{}, err
	}
	upd := usecase.ProposalUpdate{
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientPhone:   r.ClientPhone,
		EventType:     r.EventType,
		EventDate:     date,
		EventLocation: r.EventLocation,
		TotalPrice:    r.TotalPrice,
		Body:          r.Body,
	}
	if r.Status != nil {
		s := entities.ProposalStatus(*r.Status)
		upd.Status = &s
	}
	return upd, nil
}

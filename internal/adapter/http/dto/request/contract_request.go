package request

import (
	"console_comercial/internal/domain/versioning"
	"console_comercial/internal/usecase"
)

type ContractCreateRequest struct {
	ProposalID          string  `json:"proposal_id" binding:"required"`
	Body                string  `json:"body"`
	ClientAddress       string  `json:"client_address"`
	ClientProfession    string  `json:"client_profession"`
	ClientMaritalStatus string  `json:"client_marital_status"`
	EventTime           string  `json:"event_time"`
	DownPayment         float64 `json:"down_payment" binding:"gte=0"`
	DownPaymentDate     *string `json:"down_payment_date"`
	RemainingDueDate    *string `json:"remaining_due_date"`
	Notes               string  `json:"notes"`
}

func (r ContractCreateRequest) ToInput() (usecase.CreateContractInput, error) {
	downDate, err := parseDate(r.DownPaymentDate)
	if err != nil {
		return usecase.CreateContractInput{}, err
	}
	dueDate, err := parseDate(r.RemainingDueDate)
	if err != nil {
		return usecase.CreateContractInput{}, err
	}
	return usecase.CreateContractInput{
		ProposalID:          r.ProposalID,
		Body:                r.Body,
		ClientAddress:       r.ClientAddress,
		ClientProfession:    r.ClientProfession,
		ClientMaritalStatus: r.ClientMaritalStatus,
		EventTime:           r.EventTime,
		DownPayment:         r.DownPayment,
		DownPaymentDate:     downDate,
		RemainingDueDate:    dueDate,
		Notes:               r.Notes,
	}, nil
}

// ContractTermsRequest carries term edits for UpdateTerms and Amend. Only
// fields present in the body are applied.
type ContractTermsRequest struct {
	ClientName          *string `json:"client_name"`
	ClientEmail         *string `json:"client_email" binding:"omitempty,email"`
	ClientPhone         *string `json:"client_phone"`
	ClientAddress       *string `json:"client_address"`
	ClientProfession    *string `json:"client_profession"`
	ClientMaritalStatus *string `json:"client_marital_status"`

	EventType     *string `json:"event_type"`
	EventDate     *string `json:"event_date"`
	EventTime     *string `json:"event_time"`
	EventLocation *string `json:"event_location"`

	TotalPrice       *float64 `json:"total_price" binding:"omitempty,gte=0"`
	DownPayment      *float64 `json:"down_payment" binding:"omitempty,gte=0"`
	DownPaymentDate  *string  `json:"down_payment_date"`
	RemainingAmount  *float64 `json:"remaining_amount" binding:"omitempty,gte=0"`
	RemainingDueDate *string  `json:"remaining_due_date"`

	Body  *string `json:"body"`
	Notes *string `json:"notes"`
}

func (r ContractTermsRequest) ToUpdate() (versioning.TermsUpdate, error) {
	var upd versioning.TermsUpdate
	var err error
	if upd.EventDate, err = parseDate(r.EventDate); err != nil {
		return versioning.TermsUpdate{}, err
	}
	if upd.DownPaymentDate, err = parseDate(r.DownPaymentDate); err != nil {
		return versioning.TermsUpdate{}, err
	}
	if upd.RemainingDueDate, err = parseDate(r.RemainingDueDate); err != nil {
		return versioning.TermsUpdate{}, err
	}
	upd.ClientName = r.ClientName
	upd.ClientEmail = r.ClientEmail
	upd.ClientPhone = r.ClientPhone
	upd.ClientAddress = r.ClientAddress
	upd.ClientProfession = r.ClientProfession
	upd.ClientMaritalStatus = r.ClientMaritalStatus
	upd.EventType = r.EventType
	upd.EventTime = r.EventTime
	upd.EventLocation = r.EventLocation
	upd.TotalPrice = r.TotalPrice
	upd.DownPayment = r.DownPayment
	upd.RemainingAmount = r.RemainingAmount
	upd.Body = r.Body
	upd.Notes = r.Notes
	return upd, nil
}

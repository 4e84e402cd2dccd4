package request

import (
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase"
)

// LeadCreateRequest is the public quote request form.
type LeadCreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	EventType     string  `json:"event_type"`
	EventDate     *string `json:"event_date"`
	EventLocation string  `json:"event_location"`
	Message       string  `json:"message"`
}

func (r LeadCreateRequest) ToInput() (usecase.CreateLeadInput, error) {
	date, err := parseDate(r.EventDate)
	if err != nil {
		return usecase.CreateLeadInput{}, err
	}
	return usecase.CreateLeadInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		EventType:     r.EventType,
		EventDate:     date,
		EventLocation: r.EventLocation,
		Message:       r.Message,
	}, nil
}

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r LeadStatusRequest) ToStatus() entities.LeadStatus {
	return entities.LeadStatus(r.Status)
}

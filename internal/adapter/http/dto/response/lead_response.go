package response

import (
	"time"

	"console_comercial/internal/domain/entities"
)

type LeadResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	EventType     string     `json:"event_type"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	EventLocation string     `json:"event_location"`
	Message       string     `json:"message,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:            l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Phone:         l.Phone,
		EventType:     l.EventType,
		EventDate:     l.EventDate,
		EventLocation: l.EventLocation,
		Message:       l.Message,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}

package entities

import (
	"strings"
	"time"
)

// LeadStatus is free-form in the backing store; the known values are listed
// below. Unknown values are kept as-is and classified by the funnel fallback.
type LeadStatus string

const (
	LeadStatusAguardando LeadStatus = "aguardando"
	LeadStatusNovo       LeadStatus = "novo"
	LeadStatusContatado  LeadStatus = "contatado"
	LeadStatusPerdido    LeadStatus = "perdido"
	LeadStatusConvertido LeadStatus = "convertido"
)

// Lead is an inbound quote request (solicitação de orçamento) and the identity
// anchor of the sales funnel.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only Status is mutable once the lead exists.
type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone"`
	EventType     string     `json:"event_type"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	EventLocation string     `json:"event_location"`
	Message       string     `json:"message,omitempty"`
	Status        LeadStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Normalize trims identity fields and lower-cases the e-mail so records coming
// from different forms produce the same identity key.
func (l Lead) Normalize() Lead {
	l.ID = strings.TrimSpace(l.ID)
	l.Name = strings.TrimSpace(l.Name)
	l.Email = NormalizeEmail(l.Email)
	l.Phone = strings.TrimSpace(l.Phone)
	l.EventType = strings.TrimSpace(l.EventType)
	l.EventLocation = strings.TrimSpace(l.EventLocation)
	l.Status = LeadStatus(strings.ToLower(strings.TrimSpace(string(l.Status))))
	return l
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DateKey renders an optional calendar date the way identity keys expect it.
func DateKey(d *time.Time) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.UTC().Format("2006-01-02")
}

// CalendarDate keeps the day a value names in its own offset, at UTC midnight.
func CalendarDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

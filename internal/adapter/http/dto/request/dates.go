package request

import (
	"errors"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")

// parseDate accepts a calendar date or a full RFC3339 timestamp and keeps only
// the calendar day, at UTC midnight. Nil or blank input yields nil.
func parseDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	day := entities.CalendarDate(t)
	return &day, nil
}

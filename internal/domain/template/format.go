package template

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(v float64) string {
	return "R$ " + brPrinter.Sprintf("%.2f", v)
}

// FormatCalendarDate renders a stored calendar date. No zone conversion: the
// value is the day itself, kept at UTC midnight.
func FormatCalendarDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format("02/01/2006")
}

// FormatDate renders the local day of an instant.
func FormatDate(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return inLocation(*t, loc).Format("02/01/2006")
}

func FormatTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return inLocation(*t, loc).Format("15:04")
}

func FormatDateTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return inLocation(*t, loc).Format("02/01/2006 15:04")
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

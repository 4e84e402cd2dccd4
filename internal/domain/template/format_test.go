package template

import (
	"testing"
	"time"
)

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:       "R$ 0,00",
		100:     "R$ 100,00",
		1234.56: "R$ 1.234,56",
		1e6:     "R$ 1.000.000,00",
	}
	for in, want := range cases {
		if got := FormatBRL(in); got != want {
			t.Errorf("FormatBRL(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestFormatDates(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	ts := time.Date(2026, 3, 5, 2, 30, 0, 0, time.UTC)

	if got := FormatDate(&ts, loc); got != "04/03/2026" {
		t.Fatalf("expected local date, got %q", got)
	}
	if got := FormatTime(&ts, loc); got != "23:30" {
		t.Fatalf("expected local time, got %q", got)
	}
	if got := FormatDateTime(&ts, nil); got != "05/03/2026 02:30" {
		t.Fatalf("unexpected %q", got)
	}
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatCalendarDate(&day); got != "05/03/2026" {
		t.Fatalf("expected calendar day, got %q", got)
	}
	if FormatCalendarDate(nil) != "" {
		t.Fatalf("expected empty calendar date")
	}
	if FormatDate(nil, loc) != "" || FormatTime(&time.Time{}, loc) != "" {
		t.Fatalf("expected empty for missing dates")
	}
}

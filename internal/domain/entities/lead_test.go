package entities

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	local := time.Date(2026, 12, 5, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	day := CalendarDate(local)

	if got := DateKey(&day); got != "2026-12-05" {
		t.Fatalf("expected 2026-12-05, got %q", got)
	}
	stored := day.In(time.FixedZone("X", 5*3600)).UTC()
	if DateKey(&stored) != DateKey(&day) {
		t.Fatalf("key changed after zone round-trip: %q vs %q", DateKey(&stored), DateKey(&day))
	}
	if DateKey(nil) != "" {
		t.Fatal("expected empty key for nil date")
	}
}

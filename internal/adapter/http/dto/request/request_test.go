package request

import (
	"errors"
	"testing"
	"time"

	"console_comercial/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		want    *time.Time
		wantErr bool
	}{
		{name: "nil", in: nil},
		{name: "blank", in: strPtr("  ")},
		{name: "calendar date", in: strPtr("2026-12-05"), want: ptrTime(time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339 keeps the day", in: strPtr("2026-12-05T18:30:00Z"), want: ptrTime(time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339 with offset keeps the local day", in: strPtr("2026-12-05T22:00:00-03:00"), want: ptrTime(time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC))},
		{name: "brazilian format rejected", in: strPtr("05/12/2026"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && !got.Equal(*tt.want)) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestLeadCreateRequest_ToInput(t *testing.T) {
	in, err := LeadCreateRequest{Name: "Ana", Email: "ana@example.com", EventDate: strPtr("2026-12-05")}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Ana" || in.EventDate == nil || in.EventDate.Day() != 5 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if _, err := (LeadCreateRequest{EventDate: strPtr("amanhã")}).ToInput(); err == nil {
		t.Fatal("expected date error")
	}
	if got := (LeadStatusRequest{Status: "contatado"}).ToStatus(); got != entities.LeadStatusContatado {
		t.Fatalf("status = %q", got)
	}
}

func TestProposalUpdateRequest_ToUpdate(t *testing.T) {
	price := 1800.0
	upd, err := ProposalUpdateRequest{Status: strPtr("aprovado"), TotalPrice: &price}.ToUpdate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Status == nil || *upd.Status != entities.ProposalStatusAprovado {
		t.Fatalf("status not mapped: %+v", upd)
	}
	if upd.TotalPrice == nil || *upd.TotalPrice != 1800 {
		t.Fatalf("price not mapped: %+v", upd)
	}
	if upd.ClientName != nil || upd.EventDate != nil {
		t.Fatalf("absent fields should stay nil: %+v", upd)
	}
}

func TestContractRequests(t *testing.T) {
	in, err := ContractCreateRequest{ProposalID: "p-1", DownPayment: 500, DownPaymentDate: strPtr("2026-04-01")}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ProposalID != "p-1" || in.DownPaymentDate == nil || in.RemainingDueDate != nil {
		t.Fatalf("unexpected input: %+v", in)
	}
	if _, err := (ContractCreateRequest{RemainingDueDate: strPtr("x")}).ToInput(); err == nil {
		t.Fatal("expected date error")
	}

	total := 5000.0
	upd, err := ContractTermsRequest{TotalPrice: &total, EventDate: strPtr("2026-12-05"), Notes: strPtr("buffet incluso")}.ToUpdate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.TotalPrice == nil || upd.EventDate == nil || upd.Notes == nil || upd.Body != nil {
		t.Fatalf("unexpected update: %+v", upd)
	}
	if _, err := (ContractTermsRequest{DownPaymentDate: strPtr("x")}).ToUpdate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

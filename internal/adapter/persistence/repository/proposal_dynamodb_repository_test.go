package repository

import (
	"context"
	"testing"

	"console_comercial/internal/domain/entities"
)

func TestProposalDynamoRepository_SaveRequiresExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewProposalDynamoRepository(newFakeDynamo(), "")

	p := entities.Proposal{ID: "p-1", QuoteRequestID: "lead-1", ClientName: "Ana", Status: entities.ProposalStatusRascunho, TotalPrice: 1500}
	saved, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("Save(missing) error = %v", err)
	}
	if saved.ID != "" {
		t.Fatalf("Save(missing) = %+v, want zero proposal", saved)
	}

	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	p.Status = entities.ProposalStatusAprovado
	p.TotalPrice = 1750.5
	if _, err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, _ := repo.GetByID(ctx, "p-1")
	if got.Status != entities.ProposalStatusAprovado || got.TotalPrice != 1750.5 {
		t.Fatalf("GetByID() = %+v", got)
	}
}

func TestProposalDynamoRepository_ListByLeadID(t *testing.T) {
	ctx := context.Background()
	repo := NewProposalDynamoRepository(newFakeDynamo(), "")
	_, _ = repo.Create(ctx, entities.Proposal{ID: "p-1", QuoteRequestID: "lead-1", ClientName: "Ana"})
	_, _ = repo.Create(ctx, entities.Proposal{ID: "p-2", QuoteRequestID: "lead-2", ClientName: "Bia"})
	_, _ = repo.Create(ctx, entities.Proposal{ID: "p-3", ClientName: "Caio"})

	got, err := repo.ListByLeadID(ctx, "lead-1")
	if err != nil {
		t.Fatalf("ListByLeadID() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "p-1" {
		t.Fatalf("ListByLeadID() = %+v", got)
	}

	all, _ := repo.List(ctx)
	if len(all) != 3 {
		t.Fatalf("List() = %d items, want 3", len(all))
	}
}

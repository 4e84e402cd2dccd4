package interfaces

import (
	"context"

	"console_comercial/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// GetByID returns a zero Lead (empty ID) when nothing is found.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}

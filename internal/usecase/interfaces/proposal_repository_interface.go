package interfaces

import (
	"context"

	"console_comercial/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
}

package interfaces

import (
	"context"
	"errors"

	"console_comercial/internal/domain/entities"
)

// ErrStaleRevision is returned by conditional writes when the stored revision
// no longer matches the one the caller read.
var ErrStaleRevision = errors.New("stale revision")

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// The store is the single source of truth between requests: every mutation
// goes through Save, a read-modify-write guarded by the revision the caller
// read. Save increments Revision on success.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByPublicIdentifier(ctx context.Context, identifier string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	Save(ctx context.Context, c entities.Contract, expectedRevision int64) (entities.Contract, error)
}

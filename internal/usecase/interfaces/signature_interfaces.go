package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrDigestMismatch is returned by a finalizer when the stored contract no
// longer matches the digest of the handoff.
var ErrDigestMismatch = errors.New("contract digest changed before finalization")

// IOriginResolver looks up the signer's network origin. Lookups are best
// effort; callers bound them with a timeout and fall back to a sentinel.
type IOriginResolver interface {
	Resolve(ctx context.Context, hint string) (string, error)
}

// SignatureHandoff is what the finalizer receives when a signer confirms.
type SignatureHandoff struct {
	ContractID       string
	ExpectedRevision int64
	SignatureImage   string
	SignerName       string
	SignerEmail      string
	OriginIdentifier string
	AgentString      string
	Timestamp        time.Time
	ContentHash      string
}

// ISignatureFinalizer marks the contract as signed and issues the
// confirmation correspondence. An error leaves the contract in draft_signed.
type ISignatureFinalizer interface {
	Finalize(ctx context.Context, h SignatureHandoff) error
}

// ISignatureImageStore persists a drawn signature and returns its reference.
type ISignatureImageStore interface {
	Put(ctx context.Context, contractID string, contentType string, data []byte) (string, error)
}

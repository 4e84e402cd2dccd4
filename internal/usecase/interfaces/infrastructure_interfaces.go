package interfaces

import (
	"context"
	"time"
)

// IMailer sends a single HTML message.
type IMailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// IContractViewCache caches public contract views by identifier. The TTL is
// fixed when the cache is built.
type IContractViewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, keys ...string)
}

// ChangeEvent says which collection changed in the backing store.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// IChangeFeed publishes and delivers change notifications.
type IChangeFeed interface {
	Publish(ctx context.Context, ev ChangeEvent) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

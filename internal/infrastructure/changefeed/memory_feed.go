// Package changefeed fans out store change notifications to live funnel
// subscribers.
package changefeed

import (
	"context"
	"sync"

	"console_comercial/internal/usecase/interfaces"
)

const subscriberBuffer = 16

// MemoryFeed delivers events to subscribers of the same process. Slow
// subscribers miss events instead of blocking publishers.
type MemoryFeed struct {
	mu   sync.Mutex
	subs map[chan interfaces.ChangeEvent]struct{}
}

var _ interfaces.IChangeFeed = (*MemoryFeed)(nil)

func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{subs: map[chan interfaces.ChangeEvent]struct{}{}}
}

func (f *MemoryFeed) Publish(_ context.Context, ev interfaces.ChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel that is closed once ctx is done.
func (f *MemoryFeed) Subscribe(ctx context.Context) (<-chan interfaces.ChangeEvent, error) {
	ch := make(chan interfaces.ChangeEvent, subscriberBuffer)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, ch)
		close(ch)
		f.mu.Unlock()
	}()
	return ch, nil
}

package changefeed

import (
	"context"
	"encoding/json"
	"fmt"

	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "console_comercial:changes"

// RedisFeed carries change notifications between instances over pub/sub.
type RedisFeed struct {
	client  *redis.Client
	channel string
}

var _ interfaces.IChangeFeed = (*RedisFeed)(nil)

func NewRedisFeed(client *redis.Client, channel string) *RedisFeed {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisFeed{client: client, channel: channel}
}

func (f *RedisFeed) Publish(ctx context.Context, ev interfaces.ChangeEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, f.channel, b).Err()
}

// Subscribe waits for the subscription to be confirmed before returning, so
// events published afterwards are not lost.
func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan interfaces.ChangeEvent, error) {
	ps := f.client.Subscribe(ctx, f.channel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", f.channel, err)
	}

	out := make(chan interfaces.ChangeEvent, subscriberBuffer)
	log := logging.For("changefeed.redis")
	go func() {
		defer close(out)
		defer ps.Close()
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev interfaces.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.WithError(err).Warn("dropping malformed change event")
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

package changefeed

import (
	"context"
	"testing"
	"time"

	"console_comercial/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func receive(t *testing.T, ch <-chan interfaces.ChangeEvent) interfaces.ChangeEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return interfaces.ChangeEvent{}
}

func waitClosed(t *testing.T, ch <-chan interfaces.ChangeEvent) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestMemoryFeed(t *testing.T) {
	f := NewMemoryFeed()
	ctx, cancel := context.WithCancel(context.Background())

	a, _ := f.Subscribe(ctx)
	b, _ := f.Subscribe(ctx)
	ev := interfaces.ChangeEvent{Collection: "contracts", ID: "c-1", At: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	if err := f.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := receive(t, a); got.ID != "c-1" {
		t.Fatalf("a got %+v", got)
	}
	if got := receive(t, b); got.Collection != "contracts" {
		t.Fatalf("b got %+v", got)
	}

	cancel()
	waitClosed(t, a)
	waitClosed(t, b)
	if err := f.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish after cancel: %v", err)
	}
}

func TestMemoryFeed_SlowSubscriberDoesNotBlock(t *testing.T) {
	f := NewMemoryFeed()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, _ = f.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			_ = f.Publish(context.Background(), interfaces.ChangeEvent{Collection: "leads"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestRedisFeed(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	f := NewRedisFeed(client, "")
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := f.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if err := f.Publish(context.Background(), interfaces.ChangeEvent{Collection: "proposals", ID: "p-1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	got := receive(t, ch)
	if got.Collection != "proposals" || got.ID != "p-1" {
		t.Fatalf("got %+v", got)
	}

	cancel()
	waitClosed(t, ch)
}

func TestRedisFeed_DropsMalformedPayload(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	f := NewRedisFeed(client, "test:changes")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := f.Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	s.Publish("test:changes", "not-json")
	_ = f.Publish(context.Background(), interfaces.ChangeEvent{Collection: "leads", ID: "l-1"})
	if got := receive(t, ch); got.ID != "l-1" {
		t.Fatalf("got %+v", got)
	}
}

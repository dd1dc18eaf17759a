// Package events carries the signals a dispatch emits. Bus fans a named signal out to
// in-process subscribers; KafkaForwarder is one such subscriber.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// EventEnded is emitted once per processed notification, after Process returns.
const EventEnded = "s3listener.ended"

// Subscriber reacts to an emitted signal.
type Subscriber func(ctx context.Context, name string) error

// Bus is safe for concurrent use.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Subscriber
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Subscriber)}
}

// On registers s for name. Subscribers run in registration order.
func (b *Bus) On(name string, s Subscriber) {
	if s == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[name] = append(b.subscribers[name], s)
}

// Emit runs every subscriber of name, even after one fails, and joins their errors.
// A name nobody subscribed to is not an error.
func (b *Bus) Emit(ctx context.Context, name string) error {
	b.mu.RLock()
	subscribers := b.subscribers[name]
	b.mu.RUnlock()

	errs := lo.FilterMap(subscribers, func(s Subscriber, i int) (error, bool) {
		err := s(ctx, name)
		if err == nil {
			return nil, false
		}
		return fmt.Errorf("subscriber %d of %s: %w", i, name, err), true
	})
	return errors.Join(errs...)
}

// Subscribed lists the names with at least one subscriber.
func (b *Bus) Subscribed() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lo.Keys(b.subscribers)
}

// Noop discards every signal.
type Noop struct{}

func (Noop) Emit(context.Context, string) error { return nil }

// Package eventbus dispatches stored events to the policies subscribed in this
// process.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"bakery/internal/core/ports"
)

// InMemoryBus fans every envelope out to the handlers registered for its event
// type. Handlers of one envelope run sequentially in subscription order.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *slog.Logger
}

var (
	_ ports.EventPublisher  = (*InMemoryBus)(nil)
	_ ports.EventSubscriber = (*InMemoryBus)(nil)
)

func NewInMemoryBus(logger *slog.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger.With("component", "event_bus"),
	}
}

func (b *InMemoryBus) Subscribe(eventType string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish stops at the first envelope one of whose handlers failed, so the caller
// can retry from there. Every handler of that envelope still runs.
func (b *InMemoryBus) Publish(ctx context.Context, envelopes ...ports.Envelope) error {
	for _, envelope := range envelopes {
		if err := b.dispatch(ctx, envelope); err != nil {
			return err
		}
	}
	return nil
}

func (b *InMemoryBus) dispatch(ctx context.Context, envelope ports.Envelope) error {
	b.mu.RLock()
	hs := append([]ports.EventHandler(nil), b.handlers[envelope.EventType()]...)
	b.mu.RUnlock()

	if len(hs) == 0 {
		b.logger.DebugContext(ctx, "No subscribers", "eventType", envelope.EventType())
		return nil
	}

	var errList []error
	for _, h := range hs {
		if err := h.Handle(ctx, envelope); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return fmt.Errorf("dispatch %s at position %d: %w", envelope.EventType(), envelope.Position, err)
	}
	return nil
}

// Subscribers reports how many handlers listen to eventType.
func (b *InMemoryBus) Subscribers(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

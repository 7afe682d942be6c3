package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// Envelope carries a stored domain event together with its stream coordinates.
type Envelope struct {
	EventID    kernel.UUID
	Position   int64
	StreamID   kernel.UUID
	StreamType string
	Version    int
	OccurredAt time.Time
	Event      kernel.DomainEvent
}

// EventType returns the type name of the wrapped event.
func (e Envelope) EventType() string {
	if e.Event == nil {
		return ""
	}
	return e.Event.EventType()
}

// EventHandler reacts to one delivered event. Delivery is at-least-once, so
// handlers must tolerate duplicates.
type EventHandler interface {
	Handle(ctx context.Context, envelope Envelope) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, envelope Envelope) error

func (f EventHandlerFunc) Handle(ctx context.Context, envelope Envelope) error {
	return f(ctx, envelope)
}

// EventPublisher hands stored events to the transport.
type EventPublisher interface {
	Publish(ctx context.Context, envelopes ...Envelope) error
}

// EventSubscriber registers handlers by event type.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler)
}

// Outbox exposes events that were stored but not yet handed to the transport.
type Outbox interface {
	// FetchUnpublished returns at most limit events in store order.
	FetchUnpublished(ctx context.Context, limit int) ([]Envelope, error)

	// MarkPublished flags the events at the given positions as relayed.
	MarkPublished(ctx context.Context, positions []int64) error
}

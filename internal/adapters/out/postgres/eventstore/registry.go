package eventstore

import (
	"encoding/json"
	"fmt"
	"reflect"

	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/payment"
)

// Registry maps event type names to their Go types for payload decoding.
type Registry struct {
	types map[string]reflect.Type
}

func NewRegistry(events ...kernel.DomainEvent) *Registry {
	r := &Registry{types: make(map[string]reflect.Type, len(events))}
	for _, e := range events {
		r.types[e.EventType()] = reflect.TypeOf(e)
	}
	return r
}

// DomainRegistry knows every event raised by the bakery aggregates.
func DomainRegistry() *Registry {
	events := make([]kernel.DomainEvent, 0, 32)
	events = append(events, cart.Events()...)
	events = append(events, bakedgood.Events()...)
	events = append(events, location.Events()...)
	events = append(events, payment.Events()...)
	events = append(events, delivery.Events()...)
	events = append(events, courier.Events()...)
	events = append(events, offer.Events()...)
	return NewRegistry(events...)
}

func (r *Registry) Encode(e kernel.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.EventType(), err)
	}
	return payload, nil
}

// Decode returns the event as a value of its registered type.
func (r *Registry) Decode(eventType string, payload []byte) (kernel.DomainEvent, error) {
	t, ok := r.types[eventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}

	ptr := reflect.New(t)
	if err := json.Unmarshal(payload, ptr.Interface()); err != nil {
		return nil, fmt.Errorf("decode %s: %w", eventType, err)
	}

	e, ok := ptr.Elem().Interface().(kernel.DomainEvent)
	if !ok {
		return nil, fmt.Errorf("type %s is not a domain event", t)
	}
	return e, nil
}

// Types lists every registered event type.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}
	return out
}

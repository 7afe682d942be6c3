// Package kernel provides the shared domain primitives of the bakery marketplace.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate and event
//   - GeoLocation: WGS84 point with Haversine distance and 2-decimal approximation
//   - Money: amounts in cents
//   - BaseAggregate, Aggregate, DomainEvent: the event-sourced aggregate contract
//
// An aggregate's state is the ordered fold of its own events. Commands validate
// against the current state and either fail without recording anything or raise
// one or more events through BaseAggregate.Raise. Repositories rebuild an
// aggregate with BaseAggregate.Replay and persist Changes with an expected
// Version for optimistic concurrency.
package kernel

package kernel

// DomainEvent is a fact recorded by an aggregate. Implementations are plain value
// structs whose EventType is stable across releases.
type DomainEvent interface {
	EventType() string
}

// Aggregate is an event-sourced aggregate root as seen by repositories and the
// unit of work.
type Aggregate interface {
	ID() UUID
	// Version is the number of events already persisted for the instance.
	Version() int
	// Changes are the events raised since the aggregate was loaded.
	Changes() []DomainEvent
	MarkCommitted()
}

// BaseAggregate holds the identity and uncommitted changes of an event-sourced
// aggregate. Concrete aggregates embed it and own their apply function.
type BaseAggregate struct {
	id      UUID
	version int
	changes []DomainEvent
}

func NewBaseAggregate(id UUID) BaseAggregate {
	return BaseAggregate{id: id}
}

func (a *BaseAggregate) ID() UUID {
	return a.id
}

func (a *BaseAggregate) Version() int {
	return a.version
}

func (a *BaseAggregate) Changes() []DomainEvent {
	out := make([]DomainEvent, len(a.changes))
	copy(out, a.changes)
	return out
}

// HasChanges reports whether the aggregate raised events that are not yet stored.
func (a *BaseAggregate) HasChanges() bool {
	return len(a.changes) > 0
}

// MarkCommitted advances the version past the stored changes.
func (a *BaseAggregate) MarkCommitted() {
	a.version += len(a.changes)
	a.changes = nil
}

// Raise applies e and records it as an uncommitted change.
func (a *BaseAggregate) Raise(e DomainEvent, apply func(DomainEvent)) {
	apply(e)
	a.changes = append(a.changes, e)
}

// Replay folds history into the aggregate through apply.
func (a *BaseAggregate) Replay(history []DomainEvent, apply func(DomainEvent)) {
	for _, e := range history {
		apply(e)
		a.version++
	}
}

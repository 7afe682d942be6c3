package eventstore

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Tracker collects aggregates saved inside a unit of work so their changes can be
// marked committed once the transaction succeeds.
type Tracker interface {
	Track(aggregate kernel.Aggregate)
}

// Stream binds the store to one aggregate type.
type Stream[T kernel.Aggregate] struct {
	store      *Store
	streamType string
	restore    func(kernel.UUID, []kernel.DomainEvent) (T, error)
	tracker    Tracker
}

func NewStream[T kernel.Aggregate](
	store *Store,
	streamType string,
	restore func(kernel.UUID, []kernel.DomainEvent) (T, error),
	tracker Tracker,
) Stream[T] {
	return Stream[T]{store: store, streamType: streamType, restore: restore, tracker: tracker}
}

// Load rebuilds the aggregate. An empty stream is errs.ErrObjectNotFound.
func (s Stream[T]) Load(ctx context.Context, id kernel.UUID) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, err
	}

	history, err := s.store.Load(ctx, id)
	if err != nil {
		return zero, err
	}
	if len(history) == 0 {
		return zero, errs.NewObjectNotFoundError(s.streamType, id)
	}
	return s.restore(id, history)
}

// Append stores the changes of the aggregate and reports whether there were any.
func (s Stream[T]) Append(ctx context.Context, aggregate T) (bool, error) {
	if len(aggregate.Changes()) == 0 {
		return false, nil
	}
	if err := s.store.Append(ctx, s.streamType, aggregate); err != nil {
		return false, err
	}
	if s.tracker != nil {
		s.tracker.Track(aggregate)
	}
	return true, nil
}

func (s Stream[T]) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	return s.store.Exists(ctx, s.streamType, id)
}

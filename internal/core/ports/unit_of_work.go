package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Events appended by the repositories, their outbox rows and the refreshed read
// models are committed together. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and marks the changes of every
	// tracked aggregate as committed.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	CartRepository() CartRepository
	BakedGoodRepository() BakedGoodRepository
	ChosenLocationRepository() ChosenLocationRepository
	OrderRepository() OrderRepository
	PaymentRepository() PaymentRepository
	DeliveryRepository() DeliveryRepository
	CourierRepository() CourierRepository
	OfferRepository() OfferRepository
	PackageLocationRepository() PackageLocationRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	BakedGoodRepoFactory interface {
		BakedGoodRepository() ports.BakedGoodRepository
	}

	ChosenLocationRepoFactory interface {
		ChosenLocationRepository() ports.ChosenLocationRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	PackageLocationRepoFactory interface {
		PackageLocationRepository() ports.PackageLocationRepository
	}

	// CartUoW covers cart editing and checkout, which prices lines from the catalog
	// and reads the customer's chosen location.
	CartUoW interface {
		TxManager
		CartRepoFactory
		BakedGoodRepoFactory
		ChosenLocationRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	CatalogUoW interface {
		TxManager
		BakedGoodRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	LocationUoW interface {
		TxManager
		ChosenLocationRepoFactory
	}

	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// OrderUoW manages the order projection. Product names are read from the catalog.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		BakedGoodRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	OfferUoW interface {
		TxManager
		OfferRepoFactory
	}

	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// AssignmentUoW spans the delivery and the offer that won it, so a losing
	// accepted offer can be revoked in the same transaction.
	AssignmentUoW interface {
		TxManager
		DeliveryRepoFactory
		OfferRepoFactory
	}

	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// DispatchUoW stores the pickup point and creates offers for nearby couriers.
	// The delivery is read to tell whether the race for it is already decided.
	DispatchUoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
		OfferRepoFactory
		PackageLocationRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)

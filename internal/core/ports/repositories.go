// Package ports defines the contracts between the application core and its adapters:
// event-sourced repositories, the order projection, the event bus, external gateways
// and the notification sink.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/core/domain/model/payment"
)

// CartRepository loads and stores shopping carts through their event stream.
type CartRepository interface {
	// Get rebuilds the cart from its stream. Returns errs.ObjectNotFoundError when the
	// stream is empty.
	Get(ctx context.Context, id kernel.UUID) (*cart.ShoppingCart, error)

	// Save appends the uncommitted changes of the cart and refreshes its read model.
	// Returns errs.VersionIsInvalidError when another writer advanced the stream.
	Save(ctx context.Context, aggregate *cart.ShoppingCart) error
}

// BakedGoodRepository loads and stores catalog entries.
type BakedGoodRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*bakedgood.BakedGood, error)
	Save(ctx context.Context, aggregate *bakedgood.BakedGood) error
}

// ChosenLocationRepository loads and stores customer locations.
type ChosenLocationRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*location.ChosenLocation, error)
	Save(ctx context.Context, aggregate *location.ChosenLocation) error
}

// OrderRepository persists the order projection. Orders are not event-sourced.
type OrderRepository interface {
	// Add persists a new order. The order must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// PaymentRepository stores payments keyed by their order.
type PaymentRepository interface {
	Get(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
	Save(ctx context.Context, aggregate *payment.Payment) error

	// Exists reports whether a payment stream was already started for the order.
	Exists(ctx context.Context, orderID kernel.UUID) (bool, error)
}

// DeliveryRepository stores package deliveries.
type DeliveryRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*delivery.PackageDelivery, error)
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.PackageDelivery, error)
	Save(ctx context.Context, aggregate *delivery.PackageDelivery) error
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}

// CourierRepository stores courier queue entries.
type CourierRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
	Save(ctx context.Context, aggregate *courier.Courier) error

	// GetAllAvailable returns every courier currently marked available.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}

// OfferRepository stores delivery offers.
type OfferRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)
	Save(ctx context.Context, aggregate *offer.Offer) error

	// GetByDelivery returns every offer made for the delivery, whatever its status.
	GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*offer.Offer, error)

	// ExistsForCourier reports whether the courier was already offered the delivery.
	ExistsForCourier(ctx context.Context, deliveryID kernel.UUID, courierID kernel.UUID) (bool, error)
}

// PackageLocationRepository keeps the exact pickup point of a dropped package next to
// its anonymized copy.
type PackageLocationRepository interface {
	Save(ctx context.Context, info packagelocation.Info) error
	GetExact(ctx context.Context, deliveryID kernel.UUID) (packagelocation.Info, error)
	GetAnonymized(ctx context.Context, deliveryID kernel.UUID) (packagelocation.Anonymized, error)
}

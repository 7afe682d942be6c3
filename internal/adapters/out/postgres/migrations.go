package postgres

import (
	"bakery/internal/adapters/out/postgres/bakedgoodrepo"
	"bakery/internal/adapters/out/postgres/cartrepo"
	"bakery/internal/adapters/out/postgres/courierrepo"
	"bakery/internal/adapters/out/postgres/deliveryrepo"
	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/adapters/out/postgres/locationrepo"
	"bakery/internal/adapters/out/postgres/offerrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/packagelocationrepo"
	"bakery/internal/adapters/out/postgres/paymentrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns: the event store and the projections.
func Models() []any {
	return []any{
		&eventstore.EventDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&bakedgoodrepo.BakedGoodDTO{},
		&bakedgoodrepo.ReviewDTO{},
		&locationrepo.ChosenLocationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.PaymentItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierQueueDTO{},
		&offerrepo.OfferDTO{},
		&packagelocationrepo.PackageLocationDTO{},
		&packagelocationrepo.AnonymizedPackageLocationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Tables lists the table names of Models, for truncation in tests.
func Tables() []string {
	return []string{
		"event_store",
		"shopping_cart_items",
		"shopping_carts",
		"baked_good_reviews",
		"baked_goods",
		"chosen_locations",
		"order_items",
		"orders",
		"payment_items",
		"payments",
		"package_deliveries",
		"courier_queue",
		"delivery_offers",
		"package_locations",
		"package_locations_anonymized",
	}
}

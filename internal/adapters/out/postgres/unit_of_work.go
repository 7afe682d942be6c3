// Package postgres provides the GORM-based Unit of Work. Repositories obtained from
// a started unit of work share its transaction, so appended events, projections and
// outbox rows commit or roll back together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	cart, err := uow.CartRepository().Get(ctx, cartID)
//	if err != nil {
//	    return err
//	}
//	if err = cart.AddItem(bakedGoodsID, 2); err != nil {
//	    return err
//	}
//	if err = uow.CartRepository().Save(ctx, cart); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Concurrent writers of one stream are resolved by the stream version check
package postgres

import (
	"context"

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
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work with its own transaction state.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	registry *eventstore.Registry
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, eventstore.DomainRegistry())
func NewGormUnitOfWorkFactory(db *gorm.DB, registry *eventstore.Registry) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, registry: registry}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		registry: f.registry,
		tracked:  make([]kernel.Aggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// whose events were appended in it.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	registry *eventstore.Registry
	tracked  []kernel.Aggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction, then marks the changes of every tracked
// aggregate as committed so they can be saved again in a later unit of work.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = uow.tracked[:0]
		return err
	}

	for _, aggregate := range uow.tracked {
		aggregate.MarkCommitted()
	}
	uow.tracked = uow.tracked[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Tracked aggregates keep their uncommitted changes.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

// Track registers an aggregate whose events were appended in this unit of work.
// Repositories call it after a successful append.
func (uow *GormUnitOfWork) Track(aggregate kernel.Aggregate) {
	uow.tracked = append(uow.tracked, aggregate)
}

// conn returns the transaction when one is active and the plain connection otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn(), uow.registry, uow)
}

func (uow *GormUnitOfWork) BakedGoodRepository() ports.BakedGoodRepository {
	return bakedgoodrepo.NewGormBakedGoodRepository(uow.conn(), uow.registry, uow)
}

func (uow *GormUnitOfWork) ChosenLocationRepository() ports.ChosenLocationRepository {
	return locationrepo.NewGormChosenLocationRepository(uow.conn(), uow.registry, uow)
}

// OrderRepository writes the order projection; orders are not tracked since they
// carry no events.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow.registry, uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow.registry, uow)
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow.registry, uow)
}

func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.conn(), uow.registry, uow)
}

func (uow *GormUnitOfWork) PackageLocationRepository() ports.PackageLocationRepository {
	return packagelocationrepo.NewGormPackageLocationRepository(uow.conn())
}

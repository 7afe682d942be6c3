package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	brno = kernel.MustGeoLocation(49.1951, 16.6068)
	now  = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
)

// UnitOfWorkIntegrationTestSuite runs the event store, the repositories and
// their projections against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	outbox    *eventstore.Outbox
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	registry := eventstore.DomainRegistry()
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, registry)
	suite.outbox = eventstore.NewOutbox(db, registry)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range postgres_adapter.Tables() {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) inTx(fn func(uow ports.UnitOfWork) error) error {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	if err := fn(uow); err != nil {
		suite.Require().NoError(uow.Rollback(ctx))
		return err
	}
	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsEventsAndMarksAggregateCommitted() {
	// Given
	ctx := suite.T().Context()
	c, err := cart.CreateWithItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	suite.Require().NoError(err)

	// When
	err = suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.CartRepository().Save(ctx, c)
	})

	// Then
	suite.Require().NoError(err)
	suite.Equal(2, c.Version())
	suite.Empty(c.Changes())

	loaded, err := suite.factory.Create().CartRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.Items(), loaded.Items())
	suite.Equal(2, loaded.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEventsAndProjection() {
	// Given
	ctx := suite.T().Context()
	c, err := cart.CreateWithItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Save(ctx, c))

	// When
	suite.Require().NoError(uow.Rollback(ctx))

	// Then
	_, err = suite.factory.Create().CartRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.NotEmpty(c.Changes())

	var count int64
	suite.Require().NoError(suite.db.Table("shopping_carts").Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSave_StaleAggregate_ReturnsVersionConflict() {
	// Given
	ctx := suite.T().Context()
	good, err := bakedgood.Publish(kernel.NewUUID(), "Rye bread", "Sourdough", 350, 5, brno)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.BakedGoodRepository().Save(ctx, good)
	}))

	first, err := suite.factory.Create().BakedGoodRepository().Get(ctx, good.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().BakedGoodRepository().Get(ctx, good.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Restock(3))
	suite.Require().NoError(second.Restock(4))
	suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.BakedGoodRepository().Save(ctx, first)
	}))

	// When
	err = suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.BakedGoodRepository().Save(ctx, second)
	})

	// Then
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	var stock int
	suite.Require().NoError(suite.db.Table("baked_goods").Select("stock").Scan(&stock).Error)
	suite.Equal(8, stock)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_AddUpdateGet() {
	// Given
	ctx := suite.T().Context()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{
		{BakedGoodsID: kernel.NewUUID(), Name: "Croissant", Quantity: 2, UnitPrice: 250},
		{BakedGoodsID: kernel.NewUUID(), Name: "Baguette", Quantity: 1, UnitPrice: 300},
	}, brno, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.OrderRepository().Add(ctx, o)
	}))

	// When
	suite.Require().NoError(o.MarkPaid())
	err = suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.OrderRepository().Update(ctx, o)
	})

	// Then
	suite.Require().NoError(err)
	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
	suite.Equal(kernel.Money(800), loaded.Subtotal())
	suite.Equal("Croissant", loaded.Items()[0].Name)

	exists, err := suite.factory.Create().OrderRepository().Exists(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCourierRepository_GetAllAvailable() {
	// Given
	ctx := suite.T().Context()
	available, err := courier.NewAvailableCourier(kernel.NewUUID(), brno, now)
	suite.Require().NoError(err)
	away, err := courier.NewAvailableCourier(kernel.NewUUID(), brno, now)
	suite.Require().NoError(err)
	suite.Require().NoError(away.MarkUnavailable(now.Add(time.Minute)))

	suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.CourierRepository().Save(ctx, available); err != nil {
			return err
		}
		return uow.CourierRepository().Save(ctx, away)
	}))

	// When
	couriers, err := suite.factory.Create().CourierRepository().GetAllAvailable(ctx)

	// Then
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 1)
	suite.True(couriers[0].IsEqual(available))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOfferRepository_GetByDeliveryAndExistsForCourier() {
	// Given
	ctx := suite.T().Context()
	deliveryID, orderID := kernel.NewUUID(), kernel.NewUUID()
	courierA, courierB := kernel.NewUUID(), kernel.NewUUID()
	offerA, err := offer.NewOffer(kernel.NewUUID(), deliveryID, orderID, courierA, brno, now, now)
	suite.Require().NoError(err)
	offerB, err := offer.NewOffer(kernel.NewUUID(), deliveryID, orderID, courierB, brno, now, now.Add(time.Second))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
		if err := uow.OfferRepository().Save(ctx, offerA); err != nil {
			return err
		}
		return uow.OfferRepository().Save(ctx, offerB)
	}))

	// When
	offers, err := suite.factory.Create().OfferRepository().GetByDelivery(ctx, deliveryID)

	// Then
	suite.Require().NoError(err)
	suite.Require().Len(offers, 2)
	suite.True(offers[0].ID().IsEqual(offerA.ID()))

	exists, err := suite.factory.Create().OfferRepository().ExistsForCourier(ctx, deliveryID, courierB)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.factory.Create().OfferRepository().ExistsForCourier(ctx, deliveryID, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPackageLocationRepository_SaveTwiceKeepsOneRecord() {
	// Given
	ctx := suite.T().Context()
	info, err := packagelocation.NewInfo(kernel.NewUUID(), kernel.NewUUID(), kernel.MustGeoLocation(49.19512, 16.60684), "https://photos/1.jpg", now)
	suite.Require().NoError(err)

	// When
	for range 2 {
		suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
			return uow.PackageLocationRepository().Save(ctx, info)
		}))
	}

	// Then
	repo := suite.factory.Create().PackageLocationRepository()
	exact, err := repo.GetExact(ctx, info.DeliveryID())
	suite.Require().NoError(err)
	suite.Equal("https://photos/1.jpg", exact.PhotoURL())

	anon, err := repo.GetAnonymized(ctx, info.DeliveryID())
	suite.Require().NoError(err)
	suite.InDelta(49.20, anon.Location().Lat(), 1e-9)
	suite.InDelta(16.61, anon.Location().Lon(), 1e-9)

	var count int64
	suite.Require().NoError(suite.db.Table("package_locations").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutbox_FetchesUnpublishedInStoreOrder() {
	// Given
	ctx := suite.T().Context()
	c, err := cart.CreateWithItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.inTx(func(uow ports.UnitOfWork) error {
		return uow.CartRepository().Save(ctx, c)
	}))

	// When
	envelopes, err := suite.outbox.FetchUnpublished(ctx, 10)

	// Then
	suite.Require().NoError(err)
	suite.Require().Len(envelopes, 2)
	suite.Equal(cart.EventShoppingCartCreated, envelopes[0].EventType())
	suite.Equal(cart.EventCartItemQuantityIncreased, envelopes[1].EventType())
	suite.Equal(1, envelopes[0].Version)
	suite.True(envelopes[1].StreamID.IsEqual(c.ID()))

	suite.Require().NoError(suite.outbox.MarkPublished(ctx, []int64{envelopes[0].Position}))
	remaining, err := suite.outbox.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(envelopes[1].Position, remaining[0].Position)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

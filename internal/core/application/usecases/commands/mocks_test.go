package commands_test

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
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockUoW satisfies every narrow unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) BakedGoodRepository() ports.BakedGoodRepository {
	return m.Called().Get(0).(ports.BakedGoodRepository)
}

func (m *MockUoW) ChosenLocationRepository() ports.ChosenLocationRepository {
	return m.Called().Get(0).(ports.ChosenLocationRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	return m.Called().Get(0).(ports.OfferRepository)
}

func (m *MockUoW) PackageLocationRepository() ports.PackageLocationRepository {
	return m.Called().Get(0).(ports.PackageLocationRepository)
}

// MockUoWFactory returns the configured unit of work as T.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

// newUoW wires a permissive unit of work: Begin, Commit and Rollback succeed unless
// the test overrides them.
func newUoW() *MockUoW {
	uow := new(MockUoW)
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return uow
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.ShoppingCart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*cart.ShoppingCart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.ShoppingCart) error {
	return m.Called(ctx, c).Error(0)
}

type MockBakedGoodRepository struct{ mock.Mock }

func (m *MockBakedGoodRepository) Get(ctx context.Context, id kernel.UUID) (*bakedgood.BakedGood, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*bakedgood.BakedGood)
	return g, args.Error(1)
}

func (m *MockBakedGoodRepository) Save(ctx context.Context, g *bakedgood.BakedGood) error {
	return m.Called(ctx, g).Error(0)
}

type MockChosenLocationRepository struct{ mock.Mock }

func (m *MockChosenLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.ChosenLocation, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*location.ChosenLocation)
	return l, args.Error(1)
}

func (m *MockChosenLocationRepository) Save(ctx context.Context, l *location.ChosenLocation) error {
	return m.Called(ctx, l).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Get(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Exists(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.PackageDelivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.PackageDelivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.PackageDelivery, error) {
	args := m.Called(ctx, orderID)
	d, _ := args.Get(0).(*delivery.PackageDelivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) Save(ctx context.Context, d *delivery.PackageDelivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) Save(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*courier.Courier)
	return cs, args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*offer.Offer)
	return o, args.Error(1)
}

func (m *MockOfferRepository) Save(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*offer.Offer, error) {
	args := m.Called(ctx, deliveryID)
	os, _ := args.Get(0).([]*offer.Offer)
	return os, args.Error(1)
}

func (m *MockOfferRepository) ExistsForCourier(ctx context.Context, deliveryID kernel.UUID, courierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, deliveryID, courierID)
	return args.Bool(0), args.Error(1)
}

type MockPackageLocationRepository struct{ mock.Mock }

func (m *MockPackageLocationRepository) Save(ctx context.Context, info packagelocation.Info) error {
	return m.Called(ctx, info).Error(0)
}

func (m *MockPackageLocationRepository) GetExact(ctx context.Context, deliveryID kernel.UUID) (packagelocation.Info, error) {
	args := m.Called(ctx, deliveryID)
	i, _ := args.Get(0).(packagelocation.Info)
	return i, args.Error(1)
}

func (m *MockPackageLocationRepository) GetAnonymized(
	ctx context.Context,
	deliveryID kernel.UUID,
) (packagelocation.Anonymized, error) {
	args := m.Called(ctx, deliveryID)
	a, _ := args.Get(0).(packagelocation.Anonymized)
	return a, args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, orderID kernel.UUID, itemCount int) (ports.PaymentResult, error) {
	args := m.Called(ctx, orderID, itemCount)
	return args.Get(0).(ports.PaymentResult), args.Error(1)
}

type MockPayrollGateway struct{ mock.Mock }

func (m *MockPayrollGateway) ReleaseFunds(ctx context.Context, orderID kernel.UUID, transactionID string) (bool, error) {
	args := m.Called(ctx, orderID, transactionID)
	return args.Bool(0), args.Error(1)
}

package commands_test

import (
	"math"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pickup    = kernel.MustGeoLocation(49.1951, 16.6068)
	customer  = kernel.MustGeoLocation(49.2100, 16.6200)
	droppedAt = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
)

func northOf(from kernel.GeoLocation, meters float64) kernel.GeoLocation {
	return kernel.MustGeoLocation(from.Lat()+meters/kernel.EarthRadiusMeters*180/math.Pi, from.Lon())
}

func pendingOffer(t *testing.T, deliveryID kernel.UUID) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), deliveryID, kernel.NewUUID(), kernel.NewUUID(), pickup, droppedAt, droppedAt)
	require.NoError(t, err)
	o.MarkCommitted()
	return o
}

func offerFactory(uow *MockUoW) *MockUoWFactory[commands.OfferUoW] {
	f := new(MockUoWFactory[commands.OfferUoW])
	f.On("Create").Return(uow)
	return f
}

func TestOfferCommandHandler_HandleAccept_SecondAcceptanceFails(t *testing.T) {
	// Given
	ctx := t.Context()
	o := pendingOffer(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptOfferCommand(o.ID(), o.CourierID())
	require.NoError(t, err)

	repo := new(MockOfferRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil)
	repo.On("Save", ctx, o).Run(func(mock.Arguments) { o.MarkCommitted() }).Return(nil).Once()
	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("OfferRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewOfferCommandHandler(offerFactory(uow))

	// When
	err1 := h.HandleAccept(ctx, cmd)
	err2 := h.HandleAccept(ctx, cmd)

	// Then
	require.NoError(t, err1)
	require.ErrorIs(t, err2, errs.ErrPreconditionViolated)
	assert.Contains(t, err2.Error(), "Offer already ACCEPTED")
	assert.Equal(t, offer.Accepted, o.Status())
	repo.AssertExpectations(t)
}

func TestOfferCommandHandler_HandleCancelCompeting(t *testing.T) {
	// Given
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	accepted := pendingOffer(t, deliveryID)
	require.NoError(t, accepted.Accept(accepted.CourierID(), droppedAt))
	accepted.MarkCommitted()
	sibling1, sibling2 := pendingOffer(t, deliveryID), pendingOffer(t, deliveryID)
	all := []*offer.Offer{accepted, sibling1, sibling2}

	repo := new(MockOfferRepository)
	repo.On("GetByDelivery", ctx, deliveryID).Return(all, nil).Once()
	repo.On("Get", ctx, sibling1.ID()).Return(sibling1, nil).Once()
	repo.On("Get", ctx, sibling2.ID()).Return(sibling2, nil).Once()
	repo.On("Save", ctx, sibling1).Return(nil).Once()
	repo.On("Save", ctx, sibling2).Return(nil).Once()
	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("OfferRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Twice()

	cmd, err := commands.NewCancelCompetingOffersCommand(deliveryID, accepted.ID())
	require.NoError(t, err)

	// When
	h := commands.NewOfferCommandHandler(offerFactory(uow))
	cancelled, err := h.HandleCancelCompeting(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, offer.Accepted, accepted.Status())
	for _, s := range []*offer.Offer{sibling1, sibling2} {
		assert.Equal(t, offer.Cancelled, s.Status())
		assert.Equal(t, offer.CompetingAcceptanceReason(deliveryID), s.CancelReason())
	}
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchDeliveryCommandHandler_Handle_OffersCouriersWithinRadius(t *testing.T) {
	// Given
	ctx := t.Context()
	var couriers []*courier.Courier
	for _, km := range []float64{2, 4, 6, 10} {
		c, err := courier.NewAvailableCourier(kernel.NewUUID(), northOf(pickup, km*1000), droppedAt)
		require.NoError(t, err)
		couriers = append(couriers, c)
	}
	d := droppedDelivery(t)
	deliveryID, orderID := d.ID(), d.OrderID()

	deliveries := new(MockDeliveryRepository)
	deliveries.On("Get", ctx, deliveryID).Return(d, nil).Once()
	locations := new(MockPackageLocationRepository)
	locations.On("Save", ctx, mock.MatchedBy(func(i packagelocation.Info) bool {
		return i.DeliveryID().IsEqual(deliveryID) && i.PhotoURL() == "https://photos/1.jpg"
	})).Return(nil).Once()
	courierRepo := new(MockCourierRepository)
	courierRepo.On("GetAllAvailable", ctx).Return(couriers, nil).Once()
	offers := new(MockOfferRepository)
	offers.On("GetByDelivery", ctx, deliveryID).Return([]*offer.Offer{}, nil).Once()
	offers.On("ExistsForCourier", ctx, deliveryID, couriers[0].ID()).Return(false, nil).Once()
	offers.On("ExistsForCourier", ctx, deliveryID, couriers[1].ID()).Return(true, nil).Once()
	offers.On("Save", ctx, mock.MatchedBy(func(o *offer.Offer) bool {
		return o.CourierID().IsEqual(couriers[0].ID()) && o.Status() == offer.Pending
	})).Return(nil).Once()

	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("PackageLocationRepository").Return(locations)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("OfferRepository").Return(offers)
	uow.On("Commit", ctx).Return(nil).Once()
	factory := new(MockUoWFactory[commands.DispatchUoW])
	factory.On("Create").Return(uow)

	cmd, err := commands.NewDispatchDeliveryCommand(deliveryID, orderID, pickup, "https://photos/1.jpg", droppedAt)
	require.NoError(t, err)

	// When
	h := commands.NewDispatchDeliveryCommandHandler(factory, services.NewCourierDispatcher())
	dispatched, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	require.Len(t, dispatched, 1)
	assert.True(t, dispatched[0].CourierID.IsEqual(couriers[0].ID()))
	// measured to the rounded pickup point (49.20, 16.61), not the exact one
	assert.InDelta(t, 1.47, dispatched[0].DistanceKm, 0.01)
	offers.AssertExpectations(t)
	offers.AssertNotCalled(t, "ExistsForCourier", ctx, deliveryID, couriers[2].ID())
	locations.AssertExpectations(t)
}

func TestDispatchDeliveryCommandHandler_Handle_RedeliveredDropAfterDecision(t *testing.T) {
	newcomer, err := courier.NewAvailableCourier(kernel.NewUUID(), northOf(pickup, 1000), droppedAt)
	require.NoError(t, err)

	acceptedFor := func(t *testing.T, d *delivery.PackageDelivery) *offer.Offer {
		t.Helper()
		o, err := offer.NewOffer(kernel.NewUUID(), d.ID(), d.OrderID(), kernel.NewUUID(), pickup, droppedAt, droppedAt)
		require.NoError(t, err)
		require.NoError(t, o.Accept(o.CourierID(), droppedAt))
		o.MarkCommitted()
		return o
	}

	tests := []struct {
		name    string
		arrange func(t *testing.T, d *delivery.PackageDelivery, offers *MockOfferRepository)
	}{
		{
			name: "offer accepted before the courier was assigned",
			arrange: func(t *testing.T, d *delivery.PackageDelivery, offers *MockOfferRepository) {
				offers.On("GetByDelivery", mock.Anything, d.ID()).Return([]*offer.Offer{acceptedFor(t, d)}, nil).Once()
			},
		},
		{
			name: "courier already assigned",
			arrange: func(t *testing.T, d *delivery.PackageDelivery, _ *MockOfferRepository) {
				require.NoError(t, d.AssignCourier(kernel.NewUUID(), nil, droppedAt))
				d.MarkCommitted()
			},
		},
		{
			name: "package already picked up",
			arrange: func(t *testing.T, d *delivery.PackageDelivery, _ *MockOfferRepository) {
				courierID := kernel.NewUUID()
				require.NoError(t, d.AssignCourier(courierID, nil, droppedAt))
				require.NoError(t, d.MarkPickedUp(courierID, droppedAt))
				d.MarkCommitted()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			d := droppedDelivery(t)
			deliveries := new(MockDeliveryRepository)
			deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
			offers := new(MockOfferRepository)
			tt.arrange(t, d, offers)
			locations := new(MockPackageLocationRepository)
			courierRepo := new(MockCourierRepository)
			courierRepo.On("GetAllAvailable", mock.Anything).Return([]*courier.Courier{newcomer}, nil).Maybe()

			uow := newUoW()
			uow.On("Begin", ctx).Return(nil)
			uow.On("DeliveryRepository").Return(deliveries)
			uow.On("OfferRepository").Return(offers)
			uow.On("PackageLocationRepository").Return(locations)
			uow.On("CourierRepository").Return(courierRepo)
			factory := new(MockUoWFactory[commands.DispatchUoW])
			factory.On("Create").Return(uow)

			cmd, err := commands.NewDispatchDeliveryCommand(d.ID(), d.OrderID(), pickup, "https://photos/1.jpg", droppedAt)
			require.NoError(t, err)

			// When
			h := commands.NewDispatchDeliveryCommandHandler(factory, services.NewCourierDispatcher())
			dispatched, err := h.Handle(ctx, cmd)

			// Then
			require.NoError(t, err)
			assert.Empty(t, dispatched)
			offers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			locations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			offers.AssertExpectations(t)
		})
	}
}

func droppedDelivery(t *testing.T) *delivery.PackageDelivery {
	t.Helper()
	d, err := delivery.Create(kernel.NewUUID(), kernel.NewUUID(), "CRYPTO-TX-1", customer)
	require.NoError(t, err)
	require.NoError(t, d.MarkDroppedByBaker(pickup, "https://photos/1.jpg", droppedAt))
	d.MarkCommitted()
	return d
}

func TestAssignCourierCommandHandler_Handle_RevokesLosingAcceptedOffer(t *testing.T) {
	// Given
	ctx := t.Context()
	d := droppedDelivery(t)
	winner := kernel.NewUUID()
	require.NoError(t, d.AssignCourier(winner, nil, droppedAt))
	d.MarkCommitted()

	loser, err := offer.NewOffer(kernel.NewUUID(), d.ID(), d.OrderID(), kernel.NewUUID(), pickup, droppedAt, droppedAt)
	require.NoError(t, err)
	require.NoError(t, loser.Accept(loser.CourierID(), droppedAt))
	loser.MarkCommitted()
	loserID := loser.ID()

	deliveries := new(MockDeliveryRepository)
	deliveries.On("Get", ctx, d.ID()).Return(d, nil)
	offers := new(MockOfferRepository)
	offers.On("Get", ctx, loserID).Return(loser, nil)
	offers.On("Save", ctx, loser).Return(nil).Once()
	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("OfferRepository").Return(offers)
	uow.On("Commit", ctx).Return(nil).Once()
	factory := new(MockUoWFactory[commands.AssignmentUoW])
	factory.On("Create").Return(uow)

	cmd, err := commands.NewAssignCourierCommand(d.ID(), loser.CourierID(), &loserID)
	require.NoError(t, err)

	// When
	h := commands.NewAssignCourierCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	assert.Equal(t, offer.Cancelled, loser.Status())
	assert.True(t, d.IsAssignedTo(winner))
	deliveries.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	offers.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_AssignsAcceptedCourier(t *testing.T) {
	ctx := t.Context()
	d := droppedDelivery(t)
	courierID, offerID := kernel.NewUUID(), kernel.NewUUID()

	deliveries := new(MockDeliveryRepository)
	deliveries.On("Get", ctx, d.ID()).Return(d, nil)
	deliveries.On("Save", ctx, d).Return(nil).Once()
	uow := newUoW()
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("Commit", ctx).Return(nil).Once()
	factory := new(MockUoWFactory[commands.AssignmentUoW])
	factory.On("Create").Return(uow)

	cmd, _ := commands.NewAssignCourierCommand(d.ID(), courierID, &offerID)
	h := commands.NewAssignCourierCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, d.IsAssignedTo(courierID))
	require.NotNil(t, d.OfferID())
	assert.True(t, d.OfferID().IsEqual(offerID))
}

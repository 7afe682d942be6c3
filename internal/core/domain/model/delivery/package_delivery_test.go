package delivery_test

import (
	"math"
	"testing"
	"time"

	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customer = kernel.MustGeoLocation(49.1951, 16.6068)
	bakery   = kernel.MustGeoLocation(49.2000, 16.6100)
	now      = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
)

func north(from kernel.GeoLocation, meters float64) kernel.GeoLocation {
	return kernel.MustGeoLocation(from.Lat()+meters/kernel.EarthRadiusMeters*180/math.Pi, from.Lon())
}

func newDelivery(t *testing.T) *delivery.PackageDelivery {
	t.Helper()
	d, err := delivery.Create(kernel.NewUUID(), kernel.NewUUID(), "CRYPTO-TX-1", customer)
	require.NoError(t, err)
	d.MarkCommitted()
	return d
}

func inTransit(t *testing.T, courierID kernel.UUID) *delivery.PackageDelivery {
	t.Helper()
	d := newDelivery(t)
	require.NoError(t, d.MarkDroppedByBaker(bakery, "https://photos/baker.jpg", now))
	require.NoError(t, d.AssignCourier(courierID, nil, now))
	require.NoError(t, d.MarkPickedUp(courierID, now))
	d.MarkCommitted()
	return d
}

func TestCreate(t *testing.T) {
	d := newDelivery(t)

	assert.Equal(t, delivery.Created, d.Status())
	assert.Equal(t, "CRYPTO-TX-1", d.TransactionID())
	assert.True(t, d.Customer().IsEqual(customer))
	assert.Nil(t, d.CourierID())
}

func TestPackageDelivery_MarkDroppedByBaker(t *testing.T) {
	d := newDelivery(t)

	require.NoError(t, d.MarkDroppedByBaker(bakery, "https://photos/baker.jpg", now))

	assert.Equal(t, delivery.DroppedByBaker, d.Status())
	require.NotNil(t, d.BakerDrop())
	assert.Equal(t, "https://photos/baker.jpg", d.BakerDrop().PhotoURL)
	require.ErrorIs(t, d.MarkDroppedByBaker(bakery, "x", now), errs.ErrPreconditionViolated)
}

func TestPackageDelivery_AssignCourier(t *testing.T) {
	t.Run("requires dropped by baker", func(t *testing.T) {
		d := newDelivery(t)
		require.ErrorIs(t, d.AssignCourier(kernel.NewUUID(), nil, now), errs.ErrPreconditionViolated)
	})

	t.Run("second courier rejected, same courier ignored", func(t *testing.T) {
		// Given
		d := newDelivery(t)
		require.NoError(t, d.MarkDroppedByBaker(bakery, "p", now))
		first := kernel.NewUUID()
		offerID := kernel.NewUUID()
		require.NoError(t, d.AssignCourier(first, &offerID, now))
		d.MarkCommitted()

		// When
		sameErr := d.AssignCourier(first, &offerID, now)
		otherErr := d.AssignCourier(kernel.NewUUID(), nil, now)

		// Then
		require.NoError(t, sameErr)
		require.ErrorIs(t, otherErr, errs.ErrPreconditionViolated)
		assert.Empty(t, d.Changes())
		assert.True(t, d.IsAssignedTo(first))
		assert.Equal(t, delivery.DroppedByBaker, d.Status())
		assert.True(t, d.OfferID().IsEqual(offerID))
	})
}

func TestPackageDelivery_MarkPickedUp(t *testing.T) {
	d := newDelivery(t)
	require.NoError(t, d.MarkDroppedByBaker(bakery, "p", now))
	courierID := kernel.NewUUID()

	require.ErrorIs(t, d.MarkPickedUp(courierID, now), errs.ErrPreconditionViolated)

	require.NoError(t, d.AssignCourier(courierID, nil, now))
	require.ErrorIs(t, d.MarkPickedUp(kernel.NewUUID(), now), errs.ErrPreconditionViolated)
	require.NoError(t, d.MarkPickedUp(courierID, now))
	assert.Equal(t, delivery.InTransit, d.Status())
}

func TestPackageDelivery_MarkDroppedByCourier(t *testing.T) {
	tests := []struct {
		name    string
		meters  float64
		wantErr bool
	}{
		{name: "99 m accepted", meters: 99},
		{name: "exactly 100 m accepted", meters: 100},
		{name: "101 m rejected", meters: 101, wantErr: true},
		{name: "at the door", meters: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			courierID := kernel.NewUUID()
			d := inTransit(t, courierID)

			// When
			err := d.MarkDroppedByCourier(courierID, north(customer, tt.meters), "https://photos/door.jpg", now)

			// Then
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrPreconditionViolated)
				assert.Contains(t, err.Error(), "101.0 m")
				assert.Equal(t, delivery.InTransit, d.Status())
				assert.Empty(t, d.Changes())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, delivery.DroppedByCourier, d.Status())
		})
	}

	t.Run("other courier rejected", func(t *testing.T) {
		d := inTransit(t, kernel.NewUUID())
		err := d.MarkDroppedByCourier(kernel.NewUUID(), customer, "p", now)
		require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	})
}

func TestPackageDelivery_RetrieveAndConfirm(t *testing.T) {
	courierID := kernel.NewUUID()
	d := inTransit(t, courierID)

	require.ErrorIs(t, d.Retrieve(now), errs.ErrPreconditionViolated)
	require.NoError(t, d.MarkDroppedByCourier(courierID, customer, "p", now))
	require.ErrorIs(t, d.ConfirmDelivery(now), errs.ErrPreconditionViolated)

	require.NoError(t, d.Retrieve(now))
	assert.Equal(t, delivery.DroppedByCourier, d.Status())
	require.NotNil(t, d.RetrievedAt())
	require.ErrorIs(t, d.Retrieve(now), errs.ErrPreconditionViolated)

	require.NoError(t, d.ConfirmDelivery(now))
	assert.Equal(t, delivery.Delivered, d.Status())
}

func TestRestore(t *testing.T) {
	courierID := kernel.NewUUID()
	d, err := delivery.Create(kernel.NewUUID(), kernel.NewUUID(), "tx", customer)
	require.NoError(t, err)
	require.NoError(t, d.MarkDroppedByBaker(bakery, "p", now))
	require.NoError(t, d.AssignCourier(courierID, nil, now))

	restored, err := delivery.Restore(d.ID(), d.Changes())

	require.NoError(t, err)
	assert.Equal(t, delivery.DroppedByBaker, restored.Status())
	assert.True(t, restored.IsAssignedTo(courierID))
	assert.Equal(t, 3, restored.Version())
}

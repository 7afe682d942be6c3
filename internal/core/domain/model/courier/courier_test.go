package courier_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	brno = kernel.MustGeoLocation(49.1951, 16.6068)
	now  = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
)

func TestNewAvailableCourier(t *testing.T) {
	id := kernel.NewUUID()

	c, err := courier.NewAvailableCourier(id, brno, now)

	require.NoError(t, err)
	assert.True(t, c.IsAvailable())
	assert.True(t, c.Location().IsEqual(brno))
	assert.Equal(t, now, c.LastUpdatedAt())
	assert.Equal(t, []kernel.DomainEvent{courier.CourierMarkedAvailable{
		CourierID: id, Lat: brno.Lat(), Lon: brno.Lon(), At: now,
	}}, c.Changes())

	_, err = courier.NewAvailableCourier(kernel.UUID{}, brno, now)
	require.Error(t, err)
}

func TestCourier_MarkUnavailable(t *testing.T) {
	c, err := courier.NewAvailableCourier(kernel.NewUUID(), brno, now)
	require.NoError(t, err)
	c.MarkCommitted()

	require.NoError(t, c.MarkUnavailable(now))
	require.NoError(t, c.MarkUnavailable(now))

	assert.False(t, c.IsAvailable())
	assert.Len(t, c.Changes(), 1)
}

func TestCourier_UpdateLocation(t *testing.T) {
	c, err := courier.NewAvailableCourier(kernel.NewUUID(), brno, now)
	require.NoError(t, err)
	moved := kernel.MustGeoLocation(49.2, 16.61)

	require.NoError(t, c.UpdateLocation(moved, now.Add(time.Minute)))
	assert.True(t, c.Location().IsEqual(moved))

	require.NoError(t, c.MarkUnavailable(now))
	err = c.UpdateLocation(brno, now)
	require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	assert.Contains(t, err.Error(), "Mark as available first")
}

func TestCourier_MarkAvailableAgain(t *testing.T) {
	c, err := courier.NewAvailableCourier(kernel.NewUUID(), brno, now)
	require.NoError(t, err)
	require.NoError(t, c.MarkUnavailable(now))

	prague := kernel.MustGeoLocation(50.0755, 14.4378)
	require.NoError(t, c.MarkAvailable(prague, now))

	assert.True(t, c.IsAvailable())
	d, err := c.DistanceKmTo(prague)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)

	restored, err := courier.Restore(c.ID(), c.Changes())
	require.NoError(t, err)
	assert.True(t, restored.IsAvailable())
	assert.Equal(t, 3, restored.Version())
}

package offer_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

func newOffer(t *testing.T, courierID kernel.UUID) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), courierID,
		kernel.MustGeoLocation(49.19512, 16.60687), now, now)
	require.NoError(t, err)
	o.MarkCommitted()
	return o
}

func TestNewOffer(t *testing.T) {
	o := newOffer(t, kernel.NewUUID())

	assert.Equal(t, offer.Pending, o.Status())
	assert.InDelta(t, 49.20, o.ApproximateLocation().Lat(), 1e-9)
	assert.InDelta(t, 16.61, o.ApproximateLocation().Lon(), 1e-9)
}

func TestOffer_Accept(t *testing.T) {
	t.Run("pending offer accepted once", func(t *testing.T) {
		// Given
		courierID := kernel.NewUUID()
		o := newOffer(t, courierID)

		// When
		first := o.Accept(courierID, now)
		second := o.Accept(courierID, now)

		// Then
		require.NoError(t, first)
		require.ErrorIs(t, second, errs.ErrPreconditionViolated)
		assert.Contains(t, second.Error(), "already ACCEPTED")
		assert.Equal(t, offer.Accepted, o.Status())
		assert.Len(t, o.Changes(), 1)
	})

	t.Run("other courier rejected", func(t *testing.T) {
		o := newOffer(t, kernel.NewUUID())
		require.ErrorIs(t, o.Accept(kernel.NewUUID(), now), errs.ErrPreconditionViolated)
		assert.Equal(t, offer.Pending, o.Status())
	})

	t.Run("cancelled offer rejected", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := newOffer(t, courierID)
		require.NoError(t, o.Cancel(offer.CompetingAcceptanceReason(o.DeliveryID()), now))

		err := o.Accept(courierID, now)
		require.ErrorIs(t, err, errs.ErrPreconditionViolated)
		assert.Contains(t, err.Error(), "already CANCELLED")
	})
}

func TestOffer_CancelAndRevoke(t *testing.T) {
	courierID := kernel.NewUUID()

	pending := newOffer(t, courierID)
	require.ErrorIs(t, pending.Revoke("x", now), errs.ErrPreconditionViolated)
	require.NoError(t, pending.Cancel("Another courier accepted delivery d", now))
	assert.Equal(t, "Another courier accepted delivery d", pending.CancelReason())
	require.ErrorIs(t, pending.Cancel("again", now), errs.ErrPreconditionViolated)

	accepted := newOffer(t, courierID)
	require.NoError(t, accepted.Accept(courierID, now))
	require.ErrorIs(t, accepted.Cancel("x", now), errs.ErrPreconditionViolated)
	require.NoError(t, accepted.Revoke("lost", now))
	assert.Equal(t, offer.Cancelled, accepted.Status())
}

func TestRestore(t *testing.T) {
	courierID := kernel.NewUUID()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), courierID,
		kernel.MustGeoLocation(1, 1), now, now)
	require.NoError(t, err)
	require.NoError(t, o.Accept(courierID, now))

	restored, err := offer.Restore(o.ID(), o.Changes())

	require.NoError(t, err)
	assert.Equal(t, offer.Accepted, restored.Status())
	require.NotNil(t, restored.AcceptedAt())
	assert.True(t, restored.BelongsTo(courierID))
}

func TestParseStatus(t *testing.T) {
	s, err := offer.ParseStatus("PENDING")
	require.NoError(t, err)
	assert.Equal(t, offer.Pending, s)

	_, err = offer.ParseStatus("UNKNOWN")
	require.Error(t, err)
}

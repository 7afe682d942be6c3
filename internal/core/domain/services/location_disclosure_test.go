package services_test

import (
	"math"
	"testing"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptedOffer(t *testing.T, courierID kernel.UUID, info packagelocation.Info) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), info.DeliveryID(), info.OrderID(), courierID, info.Location(), now, now)
	require.NoError(t, err)
	require.NoError(t, o.Accept(courierID, now))
	return o
}

func packageInfo(t *testing.T) packagelocation.Info {
	t.Helper()
	info, err := packagelocation.NewInfo(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustGeoLocation(49.195123, 16.606789), "https://photos/baker.jpg", now)
	require.NoError(t, err)
	return info
}

func TestLocationDisclosure_Disclose(t *testing.T) {
	courierID := kernel.NewUUID()
	disclosure := services.NewLocationDisclosure()

	t.Run("courier at the package sees exact location", func(t *testing.T) {
		// Given
		info := packageInfo(t)
		o := acceptedOffer(t, courierID, info)

		// When
		result, err := disclosure.Disclose(o, courierID, info.Location(), info, nil)

		// Then
		require.NoError(t, err)
		assert.True(t, result.IsExactLocation)
		assert.True(t, result.Location.IsEqual(info.Location()))
		assert.Equal(t, "https://photos/baker.jpg", result.PhotoURL)
		require.NotNil(t, result.DistanceMeters)
		assert.InDelta(t, 0, *result.DistanceMeters, 1e-9)
	})

	t.Run("courier a kilometer away sees anonymized location", func(t *testing.T) {
		info := packageInfo(t)
		o := acceptedOffer(t, courierID, info)

		result, err := disclosure.Disclose(o, courierID, northOf(info.Location(), 1000), info, nil)

		require.NoError(t, err)
		assert.False(t, result.IsExactLocation)
		assert.Empty(t, result.PhotoURL)
		assert.LessOrEqual(t, math.Abs(result.Location.Lat()-info.Location().Lat()), 0.01)
		assert.LessOrEqual(t, math.Abs(result.Location.Lon()-info.Location().Lon()), 0.01)
		assert.InDelta(t, 49.20, result.Location.Lat(), 1e-9)
		assert.Nil(t, result.DistanceMeters)
	})

	t.Run("answers from distant points reveal nothing about the exact point", func(t *testing.T) {
		// Given
		info := packageInfo(t)
		o := acceptedOffer(t, courierID, info)
		vantage := []kernel.GeoLocation{
			northOf(info.Location(), 2000),
			northOf(info.Location(), 2500),
			northOf(info.Location(), 3000),
		}

		// When
		var answers []packagelocation.Disclosure
		for _, at := range vantage {
			result, err := disclosure.Disclose(o, courierID, at, info, nil)
			require.NoError(t, err)
			answers = append(answers, result)
		}

		// Then
		for _, result := range answers {
			assert.False(t, result.IsExactLocation)
			assert.Nil(t, result.DistanceMeters)
			assert.Empty(t, result.PhotoURL)
			assert.Equal(t, answers[0], result)
		}
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		info := packageInfo(t)
		o := acceptedOffer(t, courierID, info)

		result, err := disclosure.Disclose(o, courierID, northOf(info.Location(), 499.9), info, nil)

		require.NoError(t, err)
		assert.True(t, result.IsExactLocation)
	})

	t.Run("stored anonymized record is preferred", func(t *testing.T) {
		info := packageInfo(t)
		o := acceptedOffer(t, courierID, info)
		stored := packagelocation.RestoreAnonymized(info.DeliveryID(), info.OrderID(), kernel.MustGeoLocation(49.19, 16.6), now)

		result, err := disclosure.Disclose(o, courierID, northOf(info.Location(), 2000), info, &stored)

		require.NoError(t, err)
		assert.InDelta(t, 49.19, result.Location.Lat(), 1e-9)
	})

	t.Run("another courier is denied", func(t *testing.T) {
		info := packageInfo(t)
		o := acceptedOffer(t, courierID, info)

		_, err := disclosure.Disclose(o, kernel.NewUUID(), info.Location(), info, nil)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("pending offer is denied", func(t *testing.T) {
		info := packageInfo(t)
		o, err := offer.NewOffer(kernel.NewUUID(), info.DeliveryID(), info.OrderID(), courierID, info.Location(), now, now)
		require.NoError(t, err)

		_, err = disclosure.Disclose(o, courierID, info.Location(), info, nil)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

package packagelocation_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/packagelocation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_Anonymize(t *testing.T) {
	// Given
	info, err := packagelocation.NewInfo(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustGeoLocation(49.195123, 16.606789), "https://photos/p.jpg", time.Now())
	require.NoError(t, err)

	// When
	anon := info.Anonymize()
	disclosure := packagelocation.AnonymizedDisclosure(anon)

	// Then
	assert.InDelta(t, 49.20, anon.Location().Lat(), 1e-9)
	assert.InDelta(t, 16.61, anon.Location().Lon(), 1e-9)
	assert.False(t, disclosure.IsExactLocation)
	assert.Empty(t, disclosure.PhotoURL)
	assert.Nil(t, disclosure.DistanceMeters)
	assert.Equal(t, info.DeliveryID(), anon.DeliveryID())
}

func TestNewInfo_Invalid(t *testing.T) {
	_, err := packagelocation.NewInfo(kernel.NewUUID(), kernel.NewUUID(), kernel.GeoLocation{}, "", time.Now())
	require.Error(t, err)

	var zero packagelocation.Info
	require.ErrorIs(t, zero.Validate(), packagelocation.ErrInfoIsNotConstructed)
}

package location_test

import (
	"testing"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	id := kernel.NewUUID()
	point := kernel.MustGeoLocation(50.0755, 14.4378)

	l, err := location.Choose(id, point)

	require.NoError(t, err)
	assert.True(t, l.Point().IsEqual(point))
	assert.Equal(t, []kernel.DomainEvent{location.LocationChosen{LocationID: id, Lat: 50.0755, Lon: 14.4378}}, l.Changes())

	_, err = location.Choose(id, kernel.GeoLocation{})
	require.Error(t, err)
}

func TestRestore(t *testing.T) {
	id := kernel.NewUUID()

	l, err := location.Restore(id, []kernel.DomainEvent{location.LocationChosen{LocationID: id, Lat: 1, Lon: 2}})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, l.Point().Lat(), 1e-12)
	assert.Equal(t, 1, l.Version())
}

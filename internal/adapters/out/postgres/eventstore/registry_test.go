package eventstore_test

import (
	"testing"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DecodeReturnsRegisteredValueType(t *testing.T) {
	// Given
	registry := eventstore.DomainRegistry()
	created := offer.DeliveryOfferCreated{
		OfferID:    kernel.NewUUID(),
		DeliveryID: kernel.NewUUID(),
		OrderID:    kernel.NewUUID(),
		CourierID:  kernel.NewUUID(),
		ApproxLat:  49.2,
		ApproxLon:  16.61,
	}
	payload, err := registry.Encode(created)
	require.NoError(t, err)

	// When
	decoded, err := registry.Decode(offer.EventDeliveryOfferCreated, payload)

	// Then
	require.NoError(t, err)
	got, ok := decoded.(offer.DeliveryOfferCreated)
	require.True(t, ok)
	assert.True(t, got.OfferID.IsEqual(created.OfferID))
	assert.InDelta(t, 16.61, got.ApproxLon, 1e-9)
}

func TestRegistry_UnknownEventTypeFails(t *testing.T) {
	_, err := eventstore.DomainRegistry().Decode("SomethingElse", []byte(`{}`))
	require.Error(t, err)
}

package bakedgood_test

import (
	"testing"

	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bakery = kernel.MustGeoLocation(49.1951, 16.6068)

func publish(t *testing.T) *bakedgood.BakedGood {
	t.Helper()
	g, err := bakedgood.Publish(kernel.NewUUID(), "Rye bread", "Sourdough", 350, 10, bakery)
	require.NoError(t, err)
	g.MarkCommitted()
	return g
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		price   kernel.Money
		stock   int
		wantErr bool
	}{
		{name: "valid", title: "Kolache", price: 120, stock: 0},
		{name: "free item", title: "Sample", price: 0, stock: 1},
		{name: "negative stock", title: "Kolache", price: 120, stock: -1, wantErr: true},
		{name: "negative price", title: "Kolache", price: -1, stock: 1, wantErr: true},
		{name: "empty name", title: " ", price: 1, stock: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := bakedgood.Publish(kernel.NewUUID(), tt.title, "", tt.price, tt.stock, bakery)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsPreconditionViolation(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.stock, g.Stock())
			assert.Equal(t, tt.price, g.Price())
			assert.True(t, g.Location().IsEqual(bakery))
			require.Len(t, g.Changes(), 1)
		})
	}
}

func TestBakedGood_Restock(t *testing.T) {
	g := publish(t)

	require.NoError(t, g.Restock(5))
	assert.Equal(t, 15, g.Stock())
	assert.Equal(t, bakedgood.BakedGoodRestocked{BakedGoodsID: g.ID(), Amount: 5, NewStock: 15}, g.Changes()[0])

	require.Error(t, g.Restock(0))
	require.Error(t, g.Restock(-2))
	assert.Len(t, g.Changes(), 1)
}

func TestBakedGood_AddReview(t *testing.T) {
	for _, rating := range []int{0, 6} {
		g := publish(t)
		err := g.AddReview(kernel.NewUUID(), kernel.NewUUID(), rating, "meh")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Empty(t, g.Changes())
	}

	g := publish(t)
	require.NoError(t, g.AddReview(kernel.NewUUID(), kernel.NewUUID(), 5, "great"))
	require.NoError(t, g.AddReview(kernel.NewUUID(), kernel.NewUUID(), 2, "dry"))
	assert.Len(t, g.Reviews(), 2)
	assert.InDelta(t, 3.5, g.AverageRating(), 1e-9)
}

func TestBakedGood_UpdatePrice(t *testing.T) {
	g := publish(t)

	require.NoError(t, g.UpdatePrice(400))
	assert.Equal(t, bakedgood.PriceUpdated{BakedGoodsID: g.ID(), OldPrice: 350, NewPrice: 400}, g.Changes()[0])
	require.Error(t, g.UpdatePrice(-5))

	restored, err := bakedgood.Restore(g.ID(), append([]kernel.DomainEvent{
		bakedgood.BakedGoodPublished{BakedGoodsID: g.ID(), Name: "Rye bread", Price: 350, InitialStock: 10, Lat: 1, Lon: 2},
	}, g.Changes()...))
	require.NoError(t, err)
	assert.Equal(t, kernel.Money(400), restored.Price())
	assert.Equal(t, 2, restored.Version())
}

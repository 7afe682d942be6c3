package cart_test

import (
	"testing"

	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommittedCart(t *testing.T, bakedGoodsID kernel.UUID, quantity int) *cart.ShoppingCart {
	t.Helper()
	c, err := cart.CreateWithItem(kernel.NewUUID(), bakedGoodsID, quantity)
	require.NoError(t, err)
	c.MarkCommitted()
	return c
}

func TestCreateWithItem(t *testing.T) {
	t.Run("emits created and increased", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		bread := kernel.NewUUID()

		// When
		c, err := cart.CreateWithItem(id, bread, 2)

		// Then
		require.NoError(t, err)
		require.Len(t, c.Changes(), 2)
		assert.Equal(t, cart.ShoppingCartCreated{CartID: id}, c.Changes()[0])
		assert.Equal(t, cart.CartItemQuantityIncreased{
			CartID: id, BakedGoodsID: bread, Delta: 2, NewQuantity: 2,
		}, c.Changes()[1])
		q, ok := c.Quantity(bread)
		assert.True(t, ok)
		assert.Equal(t, 2, q)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -3} {
			_, err := cart.CreateWithItem(kernel.NewUUID(), kernel.NewUUID(), q)
			require.Error(t, err)
			assert.True(t, errs.IsPreconditionViolation(err))
		}
	})
}

func TestShoppingCart_AddItem(t *testing.T) {
	bread := kernel.NewUUID()
	c := newCommittedCart(t, bread, 2)

	require.NoError(t, c.AddItem(bread, 3))

	q, _ := c.Quantity(bread)
	assert.Equal(t, 5, q)
	require.Len(t, c.Changes(), 1)
	assert.Equal(t, 3, c.Changes()[0].(cart.CartItemQuantityIncreased).Delta)
	assert.Len(t, c.Items(), 1)
}

func TestShoppingCart_SetQuantity(t *testing.T) {
	bread := kernel.NewUUID()

	t.Run("overwrites quantity", func(t *testing.T) {
		c := newCommittedCart(t, bread, 2)
		require.NoError(t, c.SetQuantity(bread, 7))
		q, _ := c.Quantity(bread)
		assert.Equal(t, 7, q)
		assert.IsType(t, cart.CartItemQuantitySet{}, c.Changes()[0])
	})

	t.Run("zero removes line", func(t *testing.T) {
		c := newCommittedCart(t, bread, 2)
		require.NoError(t, c.SetQuantity(bread, 0))
		_, ok := c.Quantity(bread)
		assert.False(t, ok)
		assert.IsType(t, cart.CartItemRemoved{}, c.Changes()[0])
	})

	t.Run("missing line is a no-op", func(t *testing.T) {
		c := newCommittedCart(t, bread, 2)
		require.NoError(t, c.SetQuantity(kernel.NewUUID(), 4))
		assert.Empty(t, c.Changes())
	})

	t.Run("negative rejected", func(t *testing.T) {
		c := newCommittedCart(t, bread, 2)
		require.Error(t, c.SetQuantity(bread, -1))
		assert.Empty(t, c.Changes())
	})
}

func TestShoppingCart_AdjustQuantity(t *testing.T) {
	bread := kernel.NewUUID()

	tests := []struct {
		name        string
		start       int
		delta       int
		wantQty     int
		wantEvents  int
		wantEventOf any
	}{
		{name: "increase", start: 2, delta: 3, wantQty: 5, wantEvents: 1, wantEventOf: cart.CartItemQuantityIncreased{}},
		{name: "decrease", start: 5, delta: -2, wantQty: 3, wantEvents: 1, wantEventOf: cart.CartItemQuantityDecreased{}},
		{name: "clamped at zero", start: 2, delta: -10, wantQty: 0, wantEvents: 1, wantEventOf: cart.CartItemQuantityDecreased{}},
		{name: "zero delta", start: 2, delta: 0, wantQty: 2, wantEvents: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCommittedCart(t, bread, tt.start)

			require.NoError(t, c.AdjustQuantity(bread, tt.delta))

			q, ok := c.Quantity(bread)
			assert.True(t, ok)
			assert.Equal(t, tt.wantQty, q)
			require.Len(t, c.Changes(), tt.wantEvents)
			if tt.wantEvents > 0 {
				assert.IsType(t, tt.wantEventOf, c.Changes()[0])
			}
		})
	}

	t.Run("clamped decrease reports actual delta", func(t *testing.T) {
		c := newCommittedCart(t, bread, 2)
		require.NoError(t, c.AdjustQuantity(bread, -10))
		ev := c.Changes()[0].(cart.CartItemQuantityDecreased)
		assert.Equal(t, 2, ev.Delta)
		assert.Equal(t, 0, ev.NewQuantity)
	})

	t.Run("line already at zero records nothing", func(t *testing.T) {
		c := newCommittedCart(t, bread, 1)
		require.NoError(t, c.AdjustQuantity(bread, -1))
		c.MarkCommitted()

		require.NoError(t, c.AdjustQuantity(bread, -1))
		assert.Empty(t, c.Changes())
	})

	t.Run("quantities never negative", func(t *testing.T) {
		c := newCommittedCart(t, bread, 3)
		for _, d := range []int{-1, 4, -20, 2, -1, -1, -1} {
			require.NoError(t, c.AdjustQuantity(bread, d))
			for _, it := range c.Items() {
				assert.GreaterOrEqual(t, it.Quantity, 0)
			}
		}
	})
}

func TestShoppingCart_RemoveItem(t *testing.T) {
	bread := kernel.NewUUID()
	c := newCommittedCart(t, bread, 1)

	require.NoError(t, c.RemoveItem(kernel.NewUUID()))
	assert.Empty(t, c.Changes())

	require.NoError(t, c.RemoveItem(bread))
	assert.True(t, c.IsEmpty())
	assert.Len(t, c.Changes(), 1)
}

func TestShoppingCart_CreateOrder(t *testing.T) {
	bread := kernel.NewUUID()
	bun := kernel.NewUUID()
	customer := kernel.MustGeoLocation(49.1951, 16.6068)
	prices := map[kernel.UUID]kernel.Money{bread: 250, bun: 80}

	t.Run("prices every line", func(t *testing.T) {
		// Given
		c := newCommittedCart(t, bread, 2)
		require.NoError(t, c.AddItem(bun, 3))
		c.MarkCommitted()
		orderID := kernel.NewUUID()

		// When
		err := c.CreateOrder(orderID, prices, customer)

		// Then
		require.NoError(t, err)
		ev := c.Changes()[0].(cart.OrderCreatedFromCart)
		assert.Equal(t, orderID, ev.OrderID)
		require.Len(t, ev.Items, 2)
		assert.Equal(t, kernel.Money(500), ev.Items[0].TotalPrice)
		assert.Equal(t, kernel.Money(240), ev.Items[1].TotalPrice)
		assert.Equal(t, 5, ev.ItemCount())
		assert.InDelta(t, 49.1951, ev.CustomerLat, 1e-9)
		require.NotNil(t, c.OrderID())
	})

	t.Run("empty cart rejected", func(t *testing.T) {
		c := newCommittedCart(t, bread, 1)
		require.NoError(t, c.AdjustQuantity(bread, -1))
		c.MarkCommitted()

		err := c.CreateOrder(kernel.NewUUID(), prices, customer)

		require.ErrorIs(t, err, errs.ErrPreconditionViolated)
		assert.Contains(t, err.Error(), "Cannot create order from empty cart")
		assert.Empty(t, c.Changes())
	})

	t.Run("second order rejected", func(t *testing.T) {
		c := newCommittedCart(t, bread, 1)
		require.NoError(t, c.CreateOrder(kernel.NewUUID(), prices, customer))

		err := c.CreateOrder(kernel.NewUUID(), prices, customer)
		require.ErrorIs(t, err, cart.ErrOrderAlreadyCreated)
	})

	t.Run("missing price rejected", func(t *testing.T) {
		c := newCommittedCart(t, kernel.NewUUID(), 1)
		err := c.CreateOrder(kernel.NewUUID(), prices, customer)
		require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	})
}

func TestShoppingCart_Delete(t *testing.T) {
	c := newCommittedCart(t, kernel.NewUUID(), 1)

	require.NoError(t, c.Delete())
	require.NoError(t, c.Delete())

	assert.True(t, c.IsDeleted())
	assert.Len(t, c.Changes(), 1)
	require.ErrorIs(t, c.AddItem(kernel.NewUUID(), 1), cart.ErrCartIsDeleted)
}

func TestRestore(t *testing.T) {
	// Given
	original := newCommittedCart(t, kernel.NewUUID(), 1)
	bun := kernel.NewUUID()
	require.NoError(t, original.AddItem(bun, 4))
	history := append([]kernel.DomainEvent{
		cart.ShoppingCartCreated{CartID: original.ID()},
	}, cart.CartItemQuantityIncreased{CartID: original.ID(), BakedGoodsID: original.Items()[0].BakedGoodsID, Delta: 1, NewQuantity: 1})
	history = append(history, original.Changes()...)

	// When
	restored, err := cart.Restore(original.ID(), history)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Version())
	assert.Equal(t, original.Items(), restored.Items())
	assert.Empty(t, restored.Changes())

	_, err = cart.Restore(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, cart.ErrCartIsNotConstructed)
}

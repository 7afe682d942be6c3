package order_test

import (
	"fmt"
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customer = kernel.MustGeoLocation(49.1951, 16.6068)

func TestNewOrder(t *testing.T) {
	t.Run("computes subtotal from lines", func(t *testing.T) {
		// Given
		items := []order.Item{
			{BakedGoodsID: kernel.NewUUID(), Name: "Rye bread", Quantity: 2, UnitPrice: 350},
			{BakedGoodsID: kernel.NewUUID(), Quantity: 3, UnitPrice: 80, LineTotal: 1},
		}

		// When
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, customer, time.Now())

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, kernel.Money(940), o.Subtotal())
		assert.Equal(t, kernel.Money(240), o.Items()[1].LineTotal)
		assert.Equal(t, order.UnknownProductName, o.Items()[1].Name)
	})

	tests := []struct {
		name  string
		items []order.Item
	}{
		{name: "no items", items: nil},
		{name: "zero quantity", items: []order.Item{{BakedGoodsID: kernel.NewUUID(), Quantity: 0, UnitPrice: 1}}},
		{name: "negative price", items: []order.Item{{BakedGoodsID: kernel.NewUUID(), Quantity: 1, UnitPrice: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), tt.items, customer, time.Now())
			require.Error(t, err)
		})
	}

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{{BakedGoodsID: kernel.NewUUID(), Quantity: 1, UnitPrice: 100}}, customer, time.Now())
	require.NoError(t, err)

	require.NoError(t, o.MarkPaid())
	assert.Equal(t, order.Paid, o.Status())

	require.NoError(t, o.MarkPaid())
	assert.Equal(t, order.Paid, o.Status())
}

func TestRestoreOrder(t *testing.T) {
	items := []order.Item{{BakedGoodsID: kernel.NewUUID(), Name: "Bun", Quantity: 1, UnitPrice: 100}}

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items, customer, order.Paid, time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.Paid, o.Status())

	_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), items, customer, order.Unknown, time.Now())
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Paid))
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(3)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()
				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})

	t.Run("string and parse round trip", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.Paid} {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
		_, err := order.ParseStatus("SHIPPED")
		require.Error(t, err)
	})

	t.Run("pay from unknown is rejected", func(t *testing.T) {
		_, err := order.Unknown.Pay()
		require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	})
}

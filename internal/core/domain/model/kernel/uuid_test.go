package kernel_test

import (
	"encoding/json"
	"testing"

	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderIDText = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	assert.NoError(t, first.Validate())
	assert.False(t, first.IsEqual(second))
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`, first.String())
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", orderIDText, false},
		{"braced", "{" + orderIDText + "}", false},
		{"urn", "urn:uuid:" + orderIDText, false},
		{"no hyphens", "550e8400e29b41d4a716446655440000", false},
		{"empty", "", true},
		{"truncated", "550e8400-e29b-41d4-a716", true},
		{"bad hex", "550e8400-e29b-41d4-a716-44665544000g", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid UUID format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderIDText, id.String())
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		raw := uuid.MustParse(orderIDText)

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.Equal(t, orderIDText, id.String())
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e})

		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	id, err := kernel.UUIDFromString(orderIDText)
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse(orderIDText), id.Bytes())
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.True(t, id.IsZero())
	assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_InEventPayload(t *testing.T) {
	type cartItemRemoved struct {
		CartID  kernel.UUID  `json:"cartId"`
		OrderID *kernel.UUID `json:"orderId,omitempty"`
	}

	t.Run("round trip", func(t *testing.T) {
		// Given
		cartID := kernel.NewUUID()
		event := cartItemRemoved{CartID: cartID}

		// When
		data, err := json.Marshal(event)
		require.NoError(t, err)
		var decoded cartItemRemoved
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then
		assert.JSONEq(t, `{"cartId":"`+cartID.String()+`"}`, string(data))
		assert.True(t, cartID.IsEqual(decoded.CartID))
		assert.Nil(t, decoded.OrderID)
	})

	t.Run("empty string decodes to zero", func(t *testing.T) {
		var decoded cartItemRemoved

		require.NoError(t, json.Unmarshal([]byte(`{"cartId":""}`), &decoded))

		assert.True(t, decoded.CartID.IsZero())
	})

	t.Run("malformed id fails", func(t *testing.T) {
		var decoded cartItemRemoved

		err := json.Unmarshal([]byte(`{"cartId":"not-a-uuid"}`), &decoded)

		assert.ErrorContains(t, err, "invalid UUID format")
	})
}

func TestUUID_AsMapKey(t *testing.T) {
	courierID := kernel.NewUUID()
	copied, err := kernel.UUIDFromString(courierID.String())
	require.NoError(t, err)

	offers := map[kernel.UUID]int{courierID: 1}
	offers[copied]++

	assert.Len(t, offers, 1)
	assert.Equal(t, 2, offers[courierID])
}

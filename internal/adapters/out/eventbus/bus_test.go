package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"bakery/internal/adapters/out/eventbus"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(position int64, e kernel.DomainEvent) ports.Envelope {
	return ports.Envelope{EventID: kernel.NewUUID(), Position: position, StreamID: kernel.NewUUID(), Event: e}
}

func TestInMemoryBus_Publish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("routes envelopes by event type", func(t *testing.T) {
		// Given
		bus := eventbus.NewInMemoryBus(logger)
		var removed, deleted []int64
		bus.Subscribe(cart.EventCartItemRemoved, ports.EventHandlerFunc(func(_ context.Context, e ports.Envelope) error {
			removed = append(removed, e.Position)
			return nil
		}))
		bus.Subscribe(cart.EventShoppingCartDeleted, ports.EventHandlerFunc(func(_ context.Context, e ports.Envelope) error {
			deleted = append(deleted, e.Position)
			return nil
		}))

		// When
		err := bus.Publish(t.Context(),
			envelope(1, cart.CartItemRemoved{}),
			envelope(2, cart.ShoppingCartDeleted{}),
			envelope(3, cart.CartItemRemoved{}),
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, removed)
		assert.Equal(t, []int64{2}, deleted)
	})

	t.Run("stops at the first failing envelope", func(t *testing.T) {
		// Given
		bus := eventbus.NewInMemoryBus(logger)
		var seen []int64
		calls := 0
		bus.Subscribe(cart.EventCartItemRemoved, ports.EventHandlerFunc(func(_ context.Context, e ports.Envelope) error {
			seen = append(seen, e.Position)
			if e.Position == 2 {
				return errors.New("database is gone")
			}
			return nil
		}))
		bus.Subscribe(cart.EventCartItemRemoved, ports.EventHandlerFunc(func(context.Context, ports.Envelope) error {
			calls++
			return nil
		}))

		// When
		err := bus.Publish(t.Context(),
			envelope(1, cart.CartItemRemoved{}),
			envelope(2, cart.CartItemRemoved{}),
			envelope(3, cart.CartItemRemoved{}),
		)

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "position 2")
		assert.Equal(t, []int64{1, 2}, seen)
		assert.Equal(t, 2, calls)
	})

	t.Run("unsubscribed events are dropped", func(t *testing.T) {
		bus := eventbus.NewInMemoryBus(logger)

		err := bus.Publish(t.Context(), envelope(1, cart.ShoppingCartCreated{}))

		require.NoError(t, err)
		assert.Zero(t, bus.Subscribers(cart.EventShoppingCartCreated))
	})
}

package gateways_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bakery/internal/adapters/out/gateways"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCryptoPaymentGateway_ProcessPayment(t *testing.T) {
	t.Run("approved charge carries a transaction id", func(t *testing.T) {
		// Given
		gateway := gateways.NewDeterministicPaymentGateway(true, discard)

		// When
		result, err := gateway.ProcessPayment(t.Context(), kernel.NewUUID(), 2)

		// Then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, strings.HasPrefix(result.TransactionID, "CRYPTO-TX-"))
		assert.Empty(t, result.ErrorMessage)
	})

	t.Run("declined charge is a result, not an error", func(t *testing.T) {
		gateway := gateways.NewDeterministicPaymentGateway(false, discard)

		result, err := gateway.ProcessPayment(t.Context(), kernel.NewUUID(), 1)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, gateways.InsufficientFundsMessage, result.ErrorMessage)
		assert.Empty(t, result.TransactionID)
	})

	t.Run("cancelled context aborts the simulated latency", func(t *testing.T) {
		gateway := gateways.NewCryptoPaymentGateway(gateways.DefaultPaymentLatency, 1, nil, discard)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := gateway.ProcessPayment(ctx, kernel.NewUUID(), 1)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPayrollGateway_ReleaseFunds(t *testing.T) {
	ok, err := gateways.NewPayrollGateway(discard).ReleaseFunds(t.Context(), kernel.NewUUID(), "CRYPTO-TX-1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogNotifier_Notify(t *testing.T) {
	// Given
	var buf bytes.Buffer
	notifier := gateways.NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))
	recipient := kernel.NewUUID()

	// When
	err := notifier.Notify(t.Context(), ports.Notification{
		Kind:        ports.NotificationCourierOffer,
		RecipientID: recipient,
		Subject:     "New Delivery Offer Available",
		Attributes:  map[string]string{"offerId": "o-1"},
	})

	// Then
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "kind=courier.offer")
	assert.Contains(t, out, "recipientId="+recipient.String())
	assert.Contains(t, out, "offerId=o-1")
}

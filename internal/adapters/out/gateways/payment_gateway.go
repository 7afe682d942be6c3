// Package gateways holds the simulated external collaborators: the crypto payment
// gateway, the payroll gateway and a notifier that only writes to the log.
package gateways

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"

	"github.com/google/uuid"
)

const (
	DefaultPaymentLatency     = 100 * time.Millisecond
	DefaultPaymentSuccessRate = 0.8

	InsufficientFundsMessage = "Insufficient funds in crypto wallet"
	transactionPrefix        = "CRYPTO-TX-"
)

// CryptoPaymentGateway approves a configurable share of charges after a fixed delay.
type CryptoPaymentGateway struct {
	latency     time.Duration
	successRate float64
	roll        func() float64
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

var _ ports.PaymentGateway = (*CryptoPaymentGateway)(nil)

func NewCryptoPaymentGateway(
	latency time.Duration,
	successRate float64,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CryptoPaymentGateway {
	return &CryptoPaymentGateway{
		latency:     latency,
		successRate: successRate,
		roll:        rand.Float64,
		metrics:     m,
		logger:      logger.With("component", "crypto_payment_gateway"),
	}
}

// NewDeterministicPaymentGateway always answers with success without delay.
func NewDeterministicPaymentGateway(success bool, logger *slog.Logger) *CryptoPaymentGateway {
	rate := 0.0
	if success {
		rate = 1.0
	}
	g := NewCryptoPaymentGateway(0, rate, nil, logger)
	g.roll = func() float64 { return 0.5 }
	return g
}

func (g *CryptoPaymentGateway) ProcessPayment(
	ctx context.Context,
	orderID kernel.UUID,
	itemCount int,
) (ports.PaymentResult, error) {
	g.logger.InfoContext(ctx, "Calling crypto payment gateway", "orderId", orderID.String(), "itemCount", itemCount)

	if g.latency > 0 {
		select {
		case <-ctx.Done():
			return ports.PaymentResult{}, ctx.Err()
		case <-time.After(g.latency):
		}
	}

	if g.roll() >= g.successRate {
		g.metrics.PaymentResult(false)
		g.logger.WarnContext(ctx, "Crypto payment declined", "orderId", orderID.String(), "reason", InsufficientFundsMessage)
		return ports.PaymentResult{Success: false, ErrorMessage: InsufficientFundsMessage}, nil
	}

	transactionID := transactionPrefix + uuid.NewString()
	g.metrics.PaymentResult(true)
	g.logger.InfoContext(ctx, "Crypto payment approved", "orderId", orderID.String(), "transactionId", transactionID)
	return ports.PaymentResult{Success: true, TransactionID: transactionID}, nil
}

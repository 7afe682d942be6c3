package gateways

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
)

// PayrollGateway releases held funds to the baker. Every release succeeds.
type PayrollGateway struct {
	logger *slog.Logger
}

var _ ports.PayrollGateway = (*PayrollGateway)(nil)

func NewPayrollGateway(logger *slog.Logger) *PayrollGateway {
	return &PayrollGateway{logger: logger.With("component", "payroll_gateway")}
}

func (g *PayrollGateway) ReleaseFunds(ctx context.Context, orderID kernel.UUID, transactionID string) (bool, error) {
	g.logger.InfoContext(ctx, "Releasing held funds to merchant account",
		"orderId", orderID.String(), "transactionId", transactionID)
	return true, nil
}

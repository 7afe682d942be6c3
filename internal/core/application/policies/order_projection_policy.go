package policies

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"
)

type OrderProjectionCommands interface {
	HandleRecord(ctx context.Context, cmd commands.RecordOrderCommand) error
	HandleMarkPaid(ctx context.Context, cmd commands.MarkOrderPaidCommand) error
}

// OrderProjectionPolicy keeps the order snapshot in step with checkout and payment.
type OrderProjectionPolicy struct {
	reactor
	orders OrderProjectionCommands
}

func NewOrderProjectionPolicy(orders OrderProjectionCommands, logger *slog.Logger, m *metrics.Metrics) *OrderProjectionPolicy {
	return &OrderProjectionPolicy{
		reactor: newReactor("order_projection_policy", logger, m),
		orders:  orders,
	}
}

func (p *OrderProjectionPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(cart.EventOrderCreatedFromCart, p.wrap(p.onOrderCreated))
	subscriber.Subscribe(payment.EventPaymentMarkedPaid, p.wrap(p.onPaymentMarkedPaid))
}

func (p *OrderProjectionPolicy) onOrderCreated(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[cart.OrderCreatedFromCart](envelope)
	if err != nil {
		return err
	}

	customer, err := kernel.NewGeoLocation(e.CustomerLat, e.CustomerLon)
	if err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(e.Items))
	for _, it := range e.Items {
		lines = append(lines, commands.OrderLine{
			BakedGoodsID: it.BakedGoodsID,
			Quantity:     it.Quantity,
			UnitPrice:    it.Price,
		})
	}

	cmd, err := commands.NewRecordOrderCommand(e.OrderID, e.CartID, lines, customer, envelope.OccurredAt)
	if err != nil {
		return err
	}
	return p.orders.HandleRecord(ctx, cmd)
}

func (p *OrderProjectionPolicy) onPaymentMarkedPaid(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[payment.PaymentMarkedPaid](envelope)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderPaidCommand(e.OrderID)
	if err != nil {
		return err
	}
	return p.orders.HandleMarkPaid(ctx, cmd)
}

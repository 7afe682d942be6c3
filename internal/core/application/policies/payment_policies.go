package policies

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"
)

type PaymentCreator interface {
	Handle(ctx context.Context, cmd commands.CreatePaymentCommand) (bool, error)
}

type PaymentCompleter interface {
	Handle(ctx context.Context, cmd commands.MarkPaymentPaidCommand) error
}

type FundsReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseFundsCommand) (commands.ReleaseOutcome, error)
}

// PaymentInitiationPolicy opens the payment of every order created from a cart.
// The handler checks for an existing payment, so a redelivered event is harmless.
type PaymentInitiationPolicy struct {
	reactor
	payments PaymentCreator
}

func NewPaymentInitiationPolicy(payments PaymentCreator, logger *slog.Logger, m *metrics.Metrics) *PaymentInitiationPolicy {
	return &PaymentInitiationPolicy{
		reactor:  newReactor("payment_initiation_policy", logger, m),
		payments: payments,
	}
}

func (p *PaymentInitiationPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(cart.EventOrderCreatedFromCart, p.wrap(p.onOrderCreated))
}

func (p *PaymentInitiationPolicy) onOrderCreated(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[cart.OrderCreatedFromCart](envelope)
	if err != nil {
		return err
	}

	customer, err := kernel.NewGeoLocation(e.CustomerLat, e.CustomerLon)
	if err != nil {
		return err
	}

	items := make([]payment.Item, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, payment.Item{
			BakedGoodsID: it.BakedGoodsID,
			Quantity:     it.Quantity,
			Price:        it.Price,
			TotalPrice:   it.TotalPrice,
		})
	}

	cmd, err := commands.NewCreatePaymentCommand(e.OrderID, e.CartID, items, customer)
	if err != nil {
		return err
	}

	created, err := p.payments.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !created {
		p.logger.WarnContext(ctx, "Payment already exists, skipping", "orderId", e.OrderID.String())
		return nil
	}

	p.logger.InfoContext(ctx, "Payment created", "orderId", e.OrderID.String(), "itemCount", e.ItemCount())
	return nil
}

// PaymentCompletionPolicy marks a payment paid once the gateway approved it.
type PaymentCompletionPolicy struct {
	reactor
	payments PaymentCompleter
}

func NewPaymentCompletionPolicy(payments PaymentCompleter, logger *slog.Logger, m *metrics.Metrics) *PaymentCompletionPolicy {
	return &PaymentCompletionPolicy{
		reactor:  newReactor("payment_completion_policy", logger, m),
		payments: payments,
	}
}

func (p *PaymentCompletionPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(payment.EventPaymentSucceeded, p.wrap(p.onPaymentSucceeded))
}

func (p *PaymentCompletionPolicy) onPaymentSucceeded(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[payment.PaymentSucceeded](envelope)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkPaymentPaidCommand(e.OrderID)
	if err != nil {
		return err
	}
	return p.payments.Handle(ctx, cmd)
}

// PayrollPolicy pays the baker out once the customer retrieved the package.
type PayrollPolicy struct {
	reactor
	payments FundsReleaser
}

func NewPayrollPolicy(payments FundsReleaser, logger *slog.Logger, m *metrics.Metrics) *PayrollPolicy {
	return &PayrollPolicy{
		reactor:  newReactor("payroll_policy", logger, m),
		payments: payments,
	}
}

func (p *PayrollPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(delivery.EventPackageRetrieved, p.wrap(p.onPackageRetrieved))
}

func (p *PayrollPolicy) onPackageRetrieved(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[delivery.PackageRetrieved](envelope)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReleaseFundsCommand(e.OrderID)
	if err != nil {
		return err
	}

	outcome, err := p.payments.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	attrs := []any{"orderId", e.OrderID.String(), "deliveryId", e.DeliveryID.String(), "outcome", outcome.String()}
	switch outcome {
	case commands.FundsReleased:
		p.logger.InfoContext(ctx, "Funds released", attrs...)
	case commands.PayrollRejected:
		p.logger.ErrorContext(ctx, "Payroll refused to release funds", attrs...)
	default:
		p.logger.WarnContext(ctx, "Funds release skipped", attrs...)
	}
	return nil
}

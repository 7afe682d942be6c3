package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
)

// PaymentResult is the outcome of a charge. A declined charge is a result, not an error.
type PaymentResult struct {
	Success       bool
	TransactionID string
	ErrorMessage  string
}

// PaymentGateway charges the customer for an order.
type PaymentGateway interface {
	// ProcessPayment returns an error only for transport failures.
	ProcessPayment(ctx context.Context, orderID kernel.UUID, itemCount int) (PaymentResult, error)
}

// PayrollGateway pays out the baker once the customer retrieved the package.
type PayrollGateway interface {
	ReleaseFunds(ctx context.Context, orderID kernel.UUID, transactionID string) (bool, error)
}

// NotificationKind names the audience and reason of a notification.
type NotificationKind string

const (
	NotificationCourierOffer    NotificationKind = "courier.offer"
	NotificationCustomerDropped NotificationKind = "customer.package_dropped"
	NotificationBakerOrderPaid  NotificationKind = "baker.order_paid"
)

// Notification is a fire-and-forget message to a participant.
type Notification struct {
	Kind NotificationKind
	// RecipientID is the courier for offers. Bakers and customers have no
	// identity of their own, so their notifications address the order.
	RecipientID kernel.UUID
	Subject     string
	Message     string
	Attributes  map[string]string
}

// Notifier delivers notifications. Callers log failures and carry on.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

package policies

import (
	"context"
	"fmt"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"
)

type DeliveryCreator interface {
	HandleCreate(ctx context.Context, cmd commands.CreateDeliveryCommand) (bool, error)
}

// DeliveryCreationPolicy tells the baker about a paid order and opens its delivery.
// One delivery exists per order, so a redelivered event creates nothing.
type DeliveryCreationPolicy struct {
	reactor
	deliveries DeliveryCreator
	notifier   ports.Notifier
	newID      func() kernel.UUID
}

func NewDeliveryCreationPolicy(
	deliveries DeliveryCreator,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) *DeliveryCreationPolicy {
	return &DeliveryCreationPolicy{
		reactor:    newReactor("delivery_creation_policy", logger, m),
		deliveries: deliveries,
		notifier:   notifier,
		newID:      kernel.NewUUID,
	}
}

func (p *DeliveryCreationPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(payment.EventPaymentMarkedPaid, p.wrap(p.onPaymentMarkedPaid))
}

func (p *DeliveryCreationPolicy) onPaymentMarkedPaid(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[payment.PaymentMarkedPaid](envelope)
	if err != nil {
		return err
	}

	customer, err := kernel.NewGeoLocation(e.CustomerLat, e.CustomerLon)
	if err != nil {
		return err
	}

	deliveryID := p.newID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, e.OrderID, e.TransactionID, customer)
	if err != nil {
		return err
	}

	created, err := p.deliveries.HandleCreate(ctx, cmd)
	if err != nil {
		return err
	}
	if !created {
		p.logger.WarnContext(ctx, "Delivery already exists, skipping", "orderId", e.OrderID.String())
		return nil
	}

	p.notify(ctx, p.notifier, ports.Notification{
		Kind:        ports.NotificationBakerOrderPaid,
		RecipientID: e.OrderID,
		Subject:     "New Order Ready for Delivery",
		Message: fmt.Sprintf(
			"Order %s was paid (transaction %s). Please prepare the baked goods and drop the package.",
			e.OrderID, e.TransactionID,
		),
		Attributes: map[string]string{
			"orderId":       e.OrderID.String(),
			"transactionId": e.TransactionID,
			"deliveryId":    deliveryID.String(),
		},
	})

	p.logger.InfoContext(ctx, "Delivery created", "orderId", e.OrderID.String(), "deliveryId", deliveryID.String())
	return nil
}

// CustomerNotificationPolicy tells the customer the package waits at the drop point.
type CustomerNotificationPolicy struct {
	reactor
	notifier ports.Notifier
}

func NewCustomerNotificationPolicy(notifier ports.Notifier, logger *slog.Logger, m *metrics.Metrics) *CustomerNotificationPolicy {
	return &CustomerNotificationPolicy{
		reactor:  newReactor("customer_notification_policy", logger, m),
		notifier: notifier,
	}
}

func (p *CustomerNotificationPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(delivery.EventPackageDroppedByCourier, p.wrap(p.onDroppedByCourier))
}

func (p *CustomerNotificationPolicy) onDroppedByCourier(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[delivery.PackageDroppedByCourier](envelope)
	if err != nil {
		return err
	}

	p.notify(ctx, p.notifier, ports.Notification{
		Kind:        ports.NotificationCustomerDropped,
		RecipientID: e.OrderID,
		Subject:     "Your Package Has Been Delivered!",
		Message:     fmt.Sprintf("Order %s was dropped at (%.6f, %.6f). You can now retrieve it.", e.OrderID, e.Lat, e.Lon),
		Attributes: map[string]string{
			"orderId":    e.OrderID.String(),
			"deliveryId": e.DeliveryID.String(),
			"photoUrl":   e.PhotoURL,
		},
	})
	return nil
}

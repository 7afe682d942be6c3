package policies

import (
	"context"
	"fmt"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"
)

type DeliveryDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchDeliveryCommand) ([]commands.DispatchedOffer, error)
}

type CompetingOfferCanceller interface {
	HandleCancelCompeting(ctx context.Context, cmd commands.CancelCompetingOffersCommand) (int, error)
}

type CourierAssigner interface {
	Handle(ctx context.Context, cmd commands.AssignCourierCommand) error
}

// CourierNeededPolicy offers a package dropped by the baker to the couriers nearby
// and tells each of them where, approximately, it waits.
type CourierNeededPolicy struct {
	reactor
	dispatcher DeliveryDispatcher
	notifier   ports.Notifier
}

func NewCourierNeededPolicy(
	dispatcher DeliveryDispatcher,
	notifier ports.Notifier,
	logger *slog.Logger,
	m *metrics.Metrics,
) *CourierNeededPolicy {
	return &CourierNeededPolicy{
		reactor:    newReactor("courier_needed_policy", logger, m),
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

func (p *CourierNeededPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(delivery.EventPackageDroppedByBaker, p.wrap(p.onDroppedByBaker))
}

func (p *CourierNeededPolicy) onDroppedByBaker(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[delivery.PackageDroppedByBaker](envelope)
	if err != nil {
		return err
	}

	pickup, err := kernel.NewGeoLocation(e.Lat, e.Lon)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDispatchDeliveryCommand(e.DeliveryID, e.OrderID, pickup, e.PhotoURL, e.DroppedAt)
	if err != nil {
		return err
	}

	dispatched, err := p.dispatcher.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	p.metrics.OffersCreated(len(dispatched))

	if len(dispatched) == 0 {
		p.logger.WarnContext(ctx, "No new offers for delivery", "deliveryId", e.DeliveryID.String())
		return nil
	}

	approx := pickup.Approximate()
	for _, d := range dispatched {
		p.notify(ctx, p.notifier, ports.Notification{
			Kind:        ports.NotificationCourierOffer,
			RecipientID: d.CourierID,
			Subject:     "New Delivery Offer Available",
			Message: fmt.Sprintf(
				"Delivery %s waits about %.1f km from you near (%.2f, %.2f). Accept offer %s to see the exact pickup point.",
				e.DeliveryID, d.DistanceKm, approx.Lat(), approx.Lon(), d.OfferID,
			),
			Attributes: map[string]string{
				"offerId":    d.OfferID.String(),
				"deliveryId": e.DeliveryID.String(),
			},
		})
	}

	p.logger.InfoContext(ctx, "Delivery offered", "deliveryId", e.DeliveryID.String(), "offers", len(dispatched))
	return nil
}

// CompetingOffersPolicy resolves the race for a delivery. The first accepted offer
// wins and its pending siblings are cancelled.
type CompetingOffersPolicy struct {
	reactor
	offers CompetingOfferCanceller
}

func NewCompetingOffersPolicy(offers CompetingOfferCanceller, logger *slog.Logger, m *metrics.Metrics) *CompetingOffersPolicy {
	return &CompetingOffersPolicy{
		reactor: newReactor("competing_offers_policy", logger, m),
		offers:  offers,
	}
}

func (p *CompetingOffersPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(offer.EventDeliveryOfferAccepted, p.wrap(p.onOfferAccepted))
}

func (p *CompetingOffersPolicy) onOfferAccepted(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[offer.DeliveryOfferAccepted](envelope)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelCompetingOffersCommand(e.DeliveryID, e.OfferID)
	if err != nil {
		return err
	}

	cancelled, err := p.offers.HandleCancelCompeting(ctx, cmd)
	if cancelled > 0 {
		p.logger.InfoContext(ctx, "Competing offers cancelled",
			"deliveryId", e.DeliveryID.String(), "acceptedOfferId", e.OfferID.String(), "cancelled", cancelled)
	}
	return err
}

// CourierAssignmentPolicy hands the delivery to the courier of an accepted offer.
// It may run before or after CompetingOffersPolicy.
type CourierAssignmentPolicy struct {
	reactor
	assigner CourierAssigner
}

func NewCourierAssignmentPolicy(assigner CourierAssigner, logger *slog.Logger, m *metrics.Metrics) *CourierAssignmentPolicy {
	return &CourierAssignmentPolicy{
		reactor:  newReactor("courier_assignment_policy", logger, m),
		assigner: assigner,
	}
}

func (p *CourierAssignmentPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(offer.EventDeliveryOfferAccepted, p.wrap(p.onOfferAccepted))
}

func (p *CourierAssignmentPolicy) onOfferAccepted(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[offer.DeliveryOfferAccepted](envelope)
	if err != nil {
		return err
	}

	offerID := e.OfferID
	cmd, err := commands.NewAssignCourierCommand(e.DeliveryID, e.CourierID, &offerID)
	if err != nil {
		return err
	}
	if err = p.assigner.Handle(ctx, cmd); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "Courier assigned",
		"deliveryId", e.DeliveryID.String(), "courierId", e.CourierID.String(), "offerId", e.OfferID.String())
	return nil
}

package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/core/domain/services"
)

// DispatchedOffer is an offer created for a nearby courier. DistanceKm is measured
// to the rounded pickup point, so it can be shown before the offer is accepted.
type DispatchedOffer struct {
	OfferID    kernel.UUID
	CourierID  kernel.UUID
	DistanceKm float64
}

// DispatchDeliveryCommandHandler stores the pickup point of a dropped package and
// offers the delivery to every available courier within the dispatch radius. No
// courier in range is not an error.
//
// Redelivery of the drop event creates nothing new: a courier already offered the
// delivery is skipped, and once the delivery has left DROPPED_BY_BAKER, has a
// courier, or has an accepted offer, no courier is offered it at all.
type DispatchDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.CourierDispatcher
	now        func() time.Time
}

func NewDispatchDeliveryCommandHandler(
	uowFactory DispatchUoWFactory,
	dispatcher services.CourierDispatcher,
) DispatchDeliveryCommandHandler {
	return DispatchDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (h *DispatchDeliveryCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveryCommand) ([]DispatchedOffer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	info, err := packagelocation.NewInfo(cmd.DeliveryID(), cmd.OrderID(), cmd.Pickup(), cmd.PhotoURL(), cmd.DroppedAt())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	decided, err := h.raceIsDecided(ctx, uow, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}
	if decided {
		return []DispatchedOffer{}, nil
	}

	if err = uow.PackageLocationRepository().Save(ctx, info); err != nil {
		return nil, err
	}

	available, err := uow.CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := h.dispatcher.Match(cmd.Pickup(), available)
	if err != nil {
		return nil, err
	}

	offers := uow.OfferRepository()
	approxPickup := cmd.Pickup().Approximate()
	offeredAt := h.now()
	dispatched := make([]DispatchedOffer, 0, len(candidates))
	for _, candidate := range candidates {
		courierID := candidate.Courier.ID()
		exists, err := offers.ExistsForCourier(ctx, cmd.DeliveryID(), courierID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		o, err := offer.NewOffer(
			kernel.NewUUID(),
			cmd.DeliveryID(),
			cmd.OrderID(),
			courierID,
			cmd.Pickup(),
			cmd.DroppedAt(),
			offeredAt,
		)
		if err != nil {
			return nil, err
		}
		if err = offers.Save(ctx, o); err != nil {
			return nil, err
		}

		approxKm, err := candidate.Courier.DistanceKmTo(approxPickup)
		if err != nil {
			return nil, err
		}

		dispatched = append(dispatched, DispatchedOffer{
			OfferID:    o.ID(),
			CourierID:  courierID,
			DistanceKm: approxKm,
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispatched, nil
}

func (h *DispatchDeliveryCommandHandler) raceIsDecided(ctx context.Context, uow DispatchUoW, deliveryID kernel.UUID) (bool, error) {
	d, err := uow.DeliveryRepository().Get(ctx, deliveryID)
	if err != nil {
		return false, err
	}
	if d.Status() != delivery.DroppedByBaker || d.CourierID() != nil {
		return true, nil
	}

	existing, err := uow.OfferRepository().GetByDelivery(ctx, deliveryID)
	if err != nil {
		return false, err
	}
	for _, o := range existing {
		if o.Status() == offer.Accepted {
			return true, nil
		}
	}
	return false, nil
}

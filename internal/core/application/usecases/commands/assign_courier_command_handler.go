package commands

import (
	"context"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/offer"
)

// AssignCourierCommandHandler binds the winning courier to a delivery.
//
// Accepting offers and assigning couriers happen in different transactions, so two
// couriers may both hold an accepted offer for one delivery. The first assignment
// wins. When a later assignment loses, its accepted offer is revoked in the same
// transaction and the assignment error is still returned, which converges the
// offers of the delivery to a single accepted one.
type AssignCourierCommandHandler struct {
	uowFactory AssignmentUoWFactory
	now        func() time.Time
}

func NewAssignCourierCommandHandler(uowFactory AssignmentUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveries := uow.DeliveryRepository()
	d, err := deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	at := h.now()
	assignErr := d.AssignCourier(cmd.CourierID(), cmd.OfferID(), at)
	if assignErr == nil {
		if !d.HasChanges() {
			return nil
		}
		if err = deliveries.Save(ctx, d); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	lost := d.CourierID() != nil && !d.IsAssignedTo(cmd.CourierID()) && cmd.OfferID() != nil
	if !lost {
		return assignErr
	}

	offers := uow.OfferRepository()
	o, err := offers.Get(ctx, *cmd.OfferID())
	if err != nil {
		return err
	}
	if o.Status() != offer.Accepted {
		return assignErr
	}

	reason := fmt.Sprintf("Delivery %s was assigned to courier %s", d.ID(), d.CourierID())
	if err = o.Revoke(reason, at); err != nil {
		return err
	}
	if err = offers.Save(ctx, o); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return assignErr
}

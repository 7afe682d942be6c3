package commands

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
)

// OfferCommandHandler accepts and cancels delivery offers.
type OfferCommandHandler struct {
	uowFactory OfferUoWFactory
	now        func() time.Time
}

func NewOfferCommandHandler(uowFactory OfferUoWFactory) OfferCommandHandler {
	return OfferCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// HandleAccept is first-accept-wins: the PENDING check of the offer plus the stream
// version check reject a second acceptance.
func (h *OfferCommandHandler) HandleAccept(ctx context.Context, cmd AcceptOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.OfferID(), func(o *offer.Offer, at time.Time) error {
		return o.Accept(cmd.CourierID(), at)
	})
}

func (h *OfferCommandHandler) HandleCancel(ctx context.Context, cmd CancelOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.OfferID(), func(o *offer.Offer, at time.Time) error {
		return o.Cancel(cmd.Reason(), at)
	})
}

// HandleCancelCompeting cancels the pending siblings of an accepted offer, each in its
// own transaction so a concurrent change of one sibling does not block the rest.
// It returns the number of offers cancelled.
func (h *OfferCommandHandler) HandleCancelCompeting(ctx context.Context, cmd CancelCompetingOffersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	siblings, err := h.pendingSiblings(ctx, cmd)
	if err != nil {
		return 0, err
	}

	reason := offer.CompetingAcceptanceReason(cmd.DeliveryID())
	cancelled := 0
	var errList []error
	for _, id := range siblings {
		err = h.change(ctx, id, func(o *offer.Offer, at time.Time) error {
			if o.Status() != offer.Pending {
				return nil
			}
			return o.Cancel(reason, at)
		})
		if err != nil {
			errList = append(errList, err)
			continue
		}
		cancelled++
	}

	return cancelled, errors.Join(errList...)
}

func (h *OfferCommandHandler) pendingSiblings(ctx context.Context, cmd CancelCompetingOffersCommand) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offers, err := uow.OfferRepository().GetByDelivery(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(offers))
	for _, o := range offers {
		if o.ID().IsEqual(cmd.AcceptedOfferID()) || o.Status() != offer.Pending {
			continue
		}
		ids = append(ids, o.ID())
	}
	return ids, nil
}

func (h *OfferCommandHandler) change(
	ctx context.Context,
	id kernel.UUID,
	decide func(o *offer.Offer, at time.Time) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferRepository()
	o, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = decide(o, h.now()); err != nil {
		return err
	}

	if !o.HasChanges() {
		return nil
	}

	if err = repo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

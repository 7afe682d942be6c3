package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/delivery"
)

// DeliveryCommandHandler drives a package delivery through its state machine.
type DeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

func NewDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeliveryCommandHandler {
	return DeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// HandleCreate opens one delivery per order. It reports false when the order already
// has a delivery.
func (h *DeliveryCommandHandler) HandleCreate(ctx context.Context, cmd CreateDeliveryCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	exists, err := repo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	d, err := delivery.Create(cmd.DeliveryID(), cmd.OrderID(), cmd.TransactionID(), cmd.Customer())
	if err != nil {
		return false, err
	}

	if err = repo.Save(ctx, d); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (h *DeliveryCommandHandler) HandleDropByBaker(ctx context.Context, cmd DeliveryCommand) error {
	return h.change(ctx, cmd, func(d *delivery.PackageDelivery, at time.Time) error {
		return d.MarkDroppedByBaker(cmd.Location(), cmd.PhotoURL(), at)
	})
}

func (h *DeliveryCommandHandler) HandlePickUp(ctx context.Context, cmd DeliveryCommand) error {
	return h.change(ctx, cmd, func(d *delivery.PackageDelivery, at time.Time) error {
		return d.MarkPickedUp(cmd.CourierID(), at)
	})
}

func (h *DeliveryCommandHandler) HandleDropByCourier(ctx context.Context, cmd DeliveryCommand) error {
	return h.change(ctx, cmd, func(d *delivery.PackageDelivery, at time.Time) error {
		return d.MarkDroppedByCourier(cmd.CourierID(), cmd.Location(), cmd.PhotoURL(), at)
	})
}

func (h *DeliveryCommandHandler) HandleRetrieve(ctx context.Context, cmd DeliveryCommand) error {
	return h.change(ctx, cmd, func(d *delivery.PackageDelivery, at time.Time) error {
		return d.Retrieve(at)
	})
}

func (h *DeliveryCommandHandler) HandleConfirm(ctx context.Context, cmd DeliveryCommand) error {
	return h.change(ctx, cmd, func(d *delivery.PackageDelivery, at time.Time) error {
		return d.ConfirmDelivery(at)
	})
}

func (h *DeliveryCommandHandler) change(
	ctx context.Context,
	cmd DeliveryCommand,
	decide func(d *delivery.PackageDelivery, at time.Time) error,
) error {
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

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = decide(d, h.now()); err != nil {
		return err
	}

	if err = repo.Save(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

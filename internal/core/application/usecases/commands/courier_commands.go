package commands

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCourierCommandIsNotConstructed = errors.New(
	"CourierCommand must be created via NewCourierCommand or NewCourierLocationCommand",
)

// CourierCommand changes the queue entry of one courier. Location is set for
// mark-available and update-location.
type CourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	location  kernel.GeoLocation

	guard guard.ConstructorGuard
}

func NewCourierCommand(courierID kernel.UUID) (CourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return CourierCommand{}, err
	}

	return CourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func NewCourierLocationCommand(courierID kernel.UUID, location kernel.GeoLocation) (CourierCommand, error) {
	if err := errors.Join(courierID.Validate(), location.Validate()); err != nil {
		return CourierCommand{}, err
	}

	return CourierCommand{
		courierID: courierID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CourierCommand) Validate() error {
	return c.guard.Validate(ErrCourierCommandIsNotConstructed)
}

func (c CourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CourierCommand) Location() kernel.GeoLocation {
	return c.location
}

// CourierCommandHandler maintains the courier queue.
type CourierCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

func NewCourierCommandHandler(uowFactory CourierUoWFactory) CourierCommandHandler {
	return CourierCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// HandleMarkAvailable puts the courier in the queue at the given location, creating
// the entry on first use.
func (h *CourierCommandHandler) HandleMarkAvailable(ctx context.Context, cmd CourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Location().Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd, true, func(c *courier.Courier, at time.Time) error {
		return c.MarkAvailable(cmd.Location(), at)
	})
}

func (h *CourierCommandHandler) HandleMarkUnavailable(ctx context.Context, cmd CourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd, false, func(c *courier.Courier, at time.Time) error {
		return c.MarkUnavailable(at)
	})
}

func (h *CourierCommandHandler) HandleUpdateLocation(ctx context.Context, cmd CourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd, false, func(c *courier.Courier, at time.Time) error {
		return c.UpdateLocation(cmd.Location(), at)
	})
}

func (h *CourierCommandHandler) change(
	ctx context.Context,
	cmd CourierCommand,
	createIfMissing bool,
	decide func(c *courier.Courier, at time.Time) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	at := h.now()
	repo := uow.CourierRepository()
	c, err := repo.Get(ctx, cmd.CourierID())
	switch {
	case err == nil:
		err = decide(c, at)
	case createIfMissing && errors.Is(err, errs.ErrObjectNotFound):
		c, err = courier.NewAvailableCourier(cmd.CourierID(), cmd.Location(), at)
	}
	if err != nil {
		return err
	}

	if !c.HasChanges() {
		return nil
	}

	if err = repo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
	"bakery/internal/pkg/guard"
)

var ErrChooseLocationCommandIsNotConstructed = errors.New(
	"ChooseLocationCommand must be created via NewChooseLocationCommand constructor",
)

// ChooseLocationCommand records the point a customer wants goods delivered to.
type ChooseLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	point      kernel.GeoLocation

	guard guard.ConstructorGuard
}

func NewChooseLocationCommand(locationID kernel.UUID, point kernel.GeoLocation) (ChooseLocationCommand, error) {
	if err := errors.Join(locationID.Validate(), point.Validate()); err != nil {
		return ChooseLocationCommand{}, err
	}

	return ChooseLocationCommand{
		locationID: locationID,
		point:      point,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChooseLocationCommand) Validate() error {
	return c.guard.Validate(ErrChooseLocationCommandIsNotConstructed)
}

func (c ChooseLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c ChooseLocationCommand) Point() kernel.GeoLocation {
	return c.point
}

type ChooseLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewChooseLocationCommandHandler(uowFactory LocationUoWFactory) ChooseLocationCommandHandler {
	return ChooseLocationCommandHandler{uowFactory: uowFactory}
}

func (h *ChooseLocationCommandHandler) Handle(ctx context.Context, cmd ChooseLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	chosen, err := location.Choose(cmd.LocationID(), cmd.Point())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ChosenLocationRepository().Save(ctx, chosen); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

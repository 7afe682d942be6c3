package commands

import (
	"context"

	"bakery/internal/core/domain/model/bakedgood"
)

// PublishBakedGoodCommandHandler creates the catalog entry stream.
type PublishBakedGoodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewPublishBakedGoodCommandHandler(uowFactory CatalogUoWFactory) PublishBakedGoodCommandHandler {
	return PublishBakedGoodCommandHandler{uowFactory: uowFactory}
}

func (h *PublishBakedGoodCommandHandler) Handle(ctx context.Context, cmd PublishBakedGoodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	good, err := bakedgood.Publish(
		cmd.BakedGoodsID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.InitialStock(),
		cmd.Location(),
	)
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

	if err = uow.BakedGoodRepository().Save(ctx, good); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

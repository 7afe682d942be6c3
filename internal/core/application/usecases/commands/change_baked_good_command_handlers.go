package commands

import (
	"context"

	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/kernel"
)

// ChangeBakedGoodCommandHandler handles restock, review and price commands. They all
// load one baked good, apply a single decision and store it.
type ChangeBakedGoodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewChangeBakedGoodCommandHandler(uowFactory CatalogUoWFactory) ChangeBakedGoodCommandHandler {
	return ChangeBakedGoodCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeBakedGoodCommandHandler) HandleRestock(ctx context.Context, cmd RestockBakedGoodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.BakedGoodsID(), func(g *bakedgood.BakedGood) error {
		return g.Restock(cmd.Amount())
	})
}

func (h *ChangeBakedGoodCommandHandler) HandleAddReview(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.BakedGoodsID(), func(g *bakedgood.BakedGood) error {
		return g.AddReview(cmd.ReviewID(), cmd.AuthorID(), cmd.Rating(), cmd.Content())
	})
}

func (h *ChangeBakedGoodCommandHandler) HandleUpdatePrice(ctx context.Context, cmd UpdatePriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.BakedGoodsID(), func(g *bakedgood.BakedGood) error {
		return g.UpdatePrice(cmd.Price())
	})
}

func (h *ChangeBakedGoodCommandHandler) change(
	ctx context.Context,
	id kernel.UUID,
	decide func(g *bakedgood.BakedGood) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BakedGoodRepository()
	good, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = decide(good); err != nil {
		return err
	}

	if err = repo.Save(ctx, good); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
)

// CheckoutCommandHandler prices every cart line from the catalog and records the
// order on the cart stream. Payment, projection and cart deletion follow from the
// emitted event.
type CheckoutCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewCheckoutCommandHandler(uowFactory CartUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory}
}

func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	chosen, err := uow.ChosenLocationRepository().Get(ctx, cmd.LocationID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	shoppingCart, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	catalog := uow.BakedGoodRepository()
	prices := make(map[kernel.UUID]kernel.Money)
	for _, item := range shoppingCart.Items() {
		if item.Quantity == 0 {
			continue
		}
		good, err := catalog.Get(ctx, item.BakedGoodsID)
		if err != nil {
			return err
		}
		prices[item.BakedGoodsID] = good.Price()
	}

	if err = shoppingCart.CreateOrder(cmd.OrderID(), prices, chosen.Point()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, shoppingCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

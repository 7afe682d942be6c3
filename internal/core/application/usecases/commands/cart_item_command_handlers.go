package commands

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// CartCommandHandler edits shopping carts. Every command runs in its own transaction
// and touches a single cart stream.
type CartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewCartCommandHandler(uowFactory CartUoWFactory) CartCommandHandler {
	return CartCommandHandler{uowFactory: uowFactory}
}

// HandleAdd merges the quantity into the cart, creating the cart on its first item.
// The baked good must be listed in the catalog.
func (h *CartCommandHandler) HandleAdd(ctx context.Context, cmd AddCartItemCommand) error {
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

	if _, err := uow.BakedGoodRepository().Get(ctx, cmd.BakedGoodsID()); err != nil {
		return err
	}

	repo := uow.CartRepository()
	shoppingCart, err := repo.Get(ctx, cmd.CartID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		shoppingCart, err = cart.CreateWithItem(cmd.CartID(), cmd.BakedGoodsID(), cmd.Quantity())
	case err == nil:
		err = shoppingCart.AddItem(cmd.BakedGoodsID(), cmd.Quantity())
	}
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, shoppingCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CartCommandHandler) HandleSetQuantity(ctx context.Context, cmd SetCartItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.CartID(), func(c *cart.ShoppingCart) error {
		return c.SetQuantity(cmd.BakedGoodsID(), cmd.Quantity())
	})
}

func (h *CartCommandHandler) HandleAdjustQuantity(ctx context.Context, cmd AdjustCartItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.CartID(), func(c *cart.ShoppingCart) error {
		return c.AdjustQuantity(cmd.BakedGoodsID(), cmd.Delta())
	})
}

func (h *CartCommandHandler) HandleRemove(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.CartID(), func(c *cart.ShoppingCart) error {
		return c.RemoveItem(cmd.BakedGoodsID())
	})
}

func (h *CartCommandHandler) HandleDelete(ctx context.Context, cmd DeleteCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.CartID(), func(c *cart.ShoppingCart) error {
		return c.Delete()
	})
}

// HandleDeleteIfEmpty deletes the cart only when its last line is gone. A cart
// that is already deleted or still has lines is left as it is.
func (h *CartCommandHandler) HandleDeleteIfEmpty(ctx context.Context, cmd DeleteCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.change(ctx, cmd.CartID(), func(c *cart.ShoppingCart) error {
		if !c.IsEmpty() {
			return nil
		}
		return c.Delete()
	})
}

func (h *CartCommandHandler) change(
	ctx context.Context,
	cartID kernel.UUID,
	decide func(c *cart.ShoppingCart) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CartRepository()
	shoppingCart, err := repo.Get(ctx, cartID)
	if err != nil {
		return err
	}

	if err = decide(shoppingCart); err != nil {
		return err
	}

	if !shoppingCart.HasChanges() {
		return nil
	}

	if err = repo.Save(ctx, shoppingCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

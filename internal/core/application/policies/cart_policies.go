package policies

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"
)

type CartCommands interface {
	HandleRemove(ctx context.Context, cmd commands.RemoveCartItemCommand) error
	HandleDelete(ctx context.Context, cmd commands.DeleteCartCommand) error
	HandleDeleteIfEmpty(ctx context.Context, cmd commands.DeleteCartCommand) error
}

// CartCleanupPolicy removes lines whose quantity reached zero and deletes the cart
// once its last line is gone or an order was created from it. Deletion follows
// from events, whichever command emptied the cart.
type CartCleanupPolicy struct {
	reactor
	carts CartCommands
}

func NewCartCleanupPolicy(carts CartCommands, logger *slog.Logger, m *metrics.Metrics) *CartCleanupPolicy {
	return &CartCleanupPolicy{
		reactor: newReactor("cart_cleanup_policy", logger, m),
		carts:   carts,
	}
}

func (p *CartCleanupPolicy) Register(subscriber ports.EventSubscriber) {
	subscriber.Subscribe(cart.EventCartItemQuantityDecreased, p.wrap(p.onQuantityDecreased))
	subscriber.Subscribe(cart.EventCartItemRemoved, p.wrap(p.onItemRemoved))
	subscriber.Subscribe(cart.EventOrderCreatedFromCart, p.wrap(p.onOrderCreated))
}

func (p *CartCleanupPolicy) onQuantityDecreased(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[cart.CartItemQuantityDecreased](envelope)
	if err != nil {
		return err
	}
	if e.NewQuantity > 0 {
		return nil
	}

	cmd, err := commands.NewRemoveCartItemCommand(e.CartID, e.BakedGoodsID)
	if err != nil {
		return err
	}
	return p.carts.HandleRemove(ctx, cmd)
}

func (p *CartCleanupPolicy) onItemRemoved(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[cart.CartItemRemoved](envelope)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCartCommand(e.CartID)
	if err != nil {
		return err
	}
	return p.carts.HandleDeleteIfEmpty(ctx, cmd)
}

func (p *CartCleanupPolicy) onOrderCreated(ctx context.Context, envelope ports.Envelope) error {
	e, err := eventOf[cart.OrderCreatedFromCart](envelope)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCartCommand(e.CartID)
	if err != nil {
		return err
	}
	if err = p.carts.HandleDelete(ctx, cmd); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "Cart deleted after checkout", "cartId", e.CartID.String(), "orderId", e.OrderID.String())
	return nil
}

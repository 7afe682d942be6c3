package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns a cart into an order delivered to a chosen location.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cartID     kernel.UUID
	orderID    kernel.UUID
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(cartID kernel.UUID, orderID kernel.UUID, locationID kernel.UUID) (CheckoutCommand, error) {
	if err := errors.Join(cartID.Validate(), orderID.Validate(), locationID.Validate()); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		cartID:     cartID,
		orderID:    orderID,
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CheckoutCommand) LocationID() kernel.UUID {
	return c.locationID
}

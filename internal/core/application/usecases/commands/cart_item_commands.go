package commands

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrSetCartItemQuantityCommandIsNotConstructed = errors.New(
		"SetCartItemQuantityCommand must be created via NewSetCartItemQuantityCommand constructor",
	)
	ErrAdjustCartItemQuantityCommandIsNotConstructed = errors.New(
		"AdjustCartItemQuantityCommand must be created via NewAdjustCartItemQuantityCommand constructor",
	)
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
	ErrDeleteCartCommandIsNotConstructed = errors.New(
		"DeleteCartCommand must be created via NewDeleteCartCommand constructor",
	)
)

// AddCartItemCommand puts quantity units of a baked good into a cart. The cart is
// created with this line when it does not exist yet.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(cartID, breadID, 2)
//	if err != nil {
//	    return err
//	}
//	err = handler.HandleAdd(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID       kernel.UUID
	bakedGoodsID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(cartID kernel.UUID, bakedGoodsID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("Quantity must be positive, got %d", quantity))
	}
	if err := errors.Join(cartID.Validate(), bakedGoodsID.Validate(), quantityErr); err != nil {
		return AddCartItemCommand{}, err
	}

	return AddCartItemCommand{
		cartID:       cartID,
		bakedGoodsID: bakedGoodsID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c AddCartItemCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// SetCartItemQuantityCommand overwrites a line quantity. Zero removes the line.
type SetCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID       kernel.UUID
	bakedGoodsID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

func NewSetCartItemQuantityCommand(
	cartID kernel.UUID,
	bakedGoodsID kernel.UUID,
	quantity int,
) (SetCartItemQuantityCommand, error) {
	var quantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("Quantity must be >= 0, got %d", quantity))
	}
	if err := errors.Join(cartID.Validate(), bakedGoodsID.Validate(), quantityErr); err != nil {
		return SetCartItemQuantityCommand{}, err
	}

	return SetCartItemQuantityCommand{
		cartID:       cartID,
		bakedGoodsID: bakedGoodsID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartItemQuantityCommandIsNotConstructed)
}

func (c SetCartItemQuantityCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c SetCartItemQuantityCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c SetCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

// AdjustCartItemQuantityCommand moves a line quantity by delta, clamped at zero.
type AdjustCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID       kernel.UUID
	bakedGoodsID kernel.UUID
	delta        int

	guard guard.ConstructorGuard
}

func NewAdjustCartItemQuantityCommand(
	cartID kernel.UUID,
	bakedGoodsID kernel.UUID,
	delta int,
) (AdjustCartItemQuantityCommand, error) {
	var deltaErr error
	if delta == 0 {
		deltaErr = errs.NewValueIsInvalidErrorWithCause("delta", errors.New("Delta must not be zero"))
	}
	if err := errors.Join(cartID.Validate(), bakedGoodsID.Validate(), deltaErr); err != nil {
		return AdjustCartItemQuantityCommand{}, err
	}

	return AdjustCartItemQuantityCommand{
		cartID:       cartID,
		bakedGoodsID: bakedGoodsID,
		delta:        delta,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AdjustCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustCartItemQuantityCommandIsNotConstructed)
}

func (c AdjustCartItemQuantityCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c AdjustCartItemQuantityCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

func (c AdjustCartItemQuantityCommand) Delta() int {
	return c.delta
}

type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID       kernel.UUID
	bakedGoodsID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(cartID kernel.UUID, bakedGoodsID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(cartID.Validate(), bakedGoodsID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		cartID:       cartID,
		bakedGoodsID: bakedGoodsID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c RemoveCartItemCommand) BakedGoodsID() kernel.UUID {
	return c.bakedGoodsID
}

type DeleteCartCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCartCommand(cartID kernel.UUID) (DeleteCartCommand, error) {
	if err := cartID.Validate(); err != nil {
		return DeleteCartCommand{}, err
	}

	return DeleteCartCommand{
		cartID: cartID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCartCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCartCommandIsNotConstructed)
}

func (c DeleteCartCommand) CartID() kernel.UUID {
	return c.cartID
}

package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreatePaymentCommandIsNotConstructed = errors.New(
		"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
	)
	ErrPayCommandIsNotConstructed = errors.New(
		"PayCommand must be created via NewPayCommand constructor",
	)
	ErrMarkPaymentPaidCommandIsNotConstructed = errors.New(
		"MarkPaymentPaidCommand must be created via NewMarkPaymentPaidCommand constructor",
	)
	ErrReleaseFundsCommandIsNotConstructed = errors.New(
		"ReleaseFundsCommand must be created via NewReleaseFundsCommand constructor",
	)
)

// CreatePaymentCommand opens the payment of a checked out order. Line and customer
// rules are enforced by the payment aggregate.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	cartID   kernel.UUID
	items    []payment.Item
	customer kernel.GeoLocation

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(
	orderID kernel.UUID,
	cartID kernel.UUID,
	items []payment.Item,
	customer kernel.GeoLocation,
) (CreatePaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), cartID.Validate(), customer.Validate()); err != nil {
		return CreatePaymentCommand{}, err
	}

	return CreatePaymentCommand{
		orderID:  orderID,
		cartID:   cartID,
		items:    append([]payment.Item(nil), items...),
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreatePaymentCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c CreatePaymentCommand) Items() []payment.Item {
	return append([]payment.Item(nil), c.items...)
}

func (c CreatePaymentCommand) Customer() kernel.GeoLocation {
	return c.customer
}

// PayCommand charges the order. The wallet address is optional.
type PayCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	walletAddress string

	guard guard.ConstructorGuard
}

func NewPayCommand(orderID kernel.UUID, walletAddress string) (PayCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PayCommand{}, err
	}

	return PayCommand{
		orderID:       orderID,
		walletAddress: walletAddress,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c PayCommand) Validate() error {
	return c.guard.Validate(ErrPayCommandIsNotConstructed)
}

func (c PayCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PayCommand) WalletAddress() string {
	return c.walletAddress
}

type MarkPaymentPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkPaymentPaidCommand(orderID kernel.UUID) (MarkPaymentPaidCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkPaymentPaidCommand{}, err
	}

	return MarkPaymentPaidCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkPaymentPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentPaidCommandIsNotConstructed)
}

func (c MarkPaymentPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

type ReleaseFundsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReleaseFundsCommand(orderID kernel.UUID) (ReleaseFundsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseFundsCommand{}, err
	}

	return ReleaseFundsCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseFundsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseFundsCommandIsNotConstructed)
}

func (c ReleaseFundsCommand) OrderID() kernel.UUID {
	return c.orderID
}

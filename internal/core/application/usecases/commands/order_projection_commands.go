package commands

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrRecordOrderCommandIsNotConstructed = errors.New(
		"RecordOrderCommand must be created via NewRecordOrderCommand constructor",
	)
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
)

// OrderLine is a priced line as frozen at checkout.
type OrderLine struct {
	BakedGoodsID kernel.UUID
	Quantity     int
	UnitPrice    kernel.Money
}

// RecordOrderCommand builds the order snapshot from a checkout.
type RecordOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	cartID    kernel.UUID
	lines     []OrderLine
	customer  kernel.GeoLocation
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewRecordOrderCommand(
	orderID kernel.UUID,
	cartID kernel.UUID,
	lines []OrderLine,
	customer kernel.GeoLocation,
	createdAt time.Time,
) (RecordOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), cartID.Validate(), customer.Validate()); err != nil {
		return RecordOrderCommand{}, err
	}

	return RecordOrderCommand{
		orderID:   orderID,
		cartID:    cartID,
		lines:     append([]OrderLine(nil), lines...),
		customer:  customer,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordOrderCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderCommandIsNotConstructed)
}

func (c RecordOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordOrderCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c RecordOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c RecordOrderCommand) Customer() kernel.GeoLocation {
	return c.customer
}

func (c RecordOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(orderID kernel.UUID) (MarkOrderPaidCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// UnknownProductName is used when a line refers to a baked good missing from the catalog.
const UnknownProductName = "Unknown Product"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Item is a priced order line.
type Item struct {
	BakedGoodsID kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	LineTotal    kernel.Money
}

// Order is the read-side snapshot of an order built from checkout and payment
// events. It is not event-sourced: the projection policy is its only writer.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and cart identifier
//   - Carries at least one item with a positive quantity
//   - Subtotal equals the sum of line totals
//   - Status moves from Created to Paid and never back
type Order struct {
	id kernel.UUID

	cartID kernel.UUID

	items []Item

	subtotal kernel.Money

	customer kernel.GeoLocation

	status Status

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in the Created status. Line totals are recomputed from
// the unit price and quantity so the subtotal always matches the lines.
//
// Example:
//
//	order, err := order.NewOrder(orderID, cartID, []order.Item{
//	    {BakedGoodsID: breadID, Name: "Rye bread", Quantity: 2, UnitPrice: 350},
//	}, customer, time.Now())
func NewOrder(
	id kernel.UUID,
	cartID kernel.UUID,
	items []Item,
	customer kernel.GeoLocation,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCartID(cartID),
		o.setItems(items),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	cartID kernel.UUID,
	items []Item,
	customer kernel.GeoLocation,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, cartID, items, customer, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate checks that the order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CartID() kernel.UUID {
	return o.cartID
}

func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) Customer() kernel.GeoLocation {
	return o.customer
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkPaid moves the order to Paid.
func (o *Order) MarkPaid() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	o.cartID = cartID
	return nil
}

func (o *Order) setCustomer(customer kernel.GeoLocation) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	lines := make([]Item, 0, len(items))
	var subtotal kernel.Money
	for _, it := range items {
		if it.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
				fmt.Errorf("%d is not greater than 0", it.Quantity))
		}
		if err := it.UnitPrice.Validate(); err != nil {
			return err
		}
		if it.Name == "" {
			it.Name = UnknownProductName
		}
		it.LineTotal = it.UnitPrice.Times(it.Quantity)
		subtotal += it.LineTotal
		lines = append(lines, it)
	}

	o.items = lines
	o.subtotal = subtotal
	return nil
}

package cart

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrCartIsNotConstructed = errors.New("ShoppingCart must be created via CreateWithItem or Restore")
	ErrCartIsDeleted        = errs.NewPreconditionViolationError("shopping cart is deleted")
	ErrCartIsEmpty          = errs.NewPreconditionViolationError("Cannot create order from empty cart")
	ErrOrderAlreadyCreated  = errs.NewPreconditionViolationError("order was already created from this cart")
)

// Item is a cart line.
type Item struct {
	BakedGoodsID kernel.UUID
	Quantity     int
}

// ShoppingCart is the event-sourced aggregate holding a customer's cart lines.
type ShoppingCart struct {
	kernel.BaseAggregate

	items   []Item
	orderID *kernel.UUID
	deleted bool
}

// CreateWithItem opens a new cart holding quantity units of one baked good.
func CreateWithItem(id kernel.UUID, bakedGoodsID kernel.UUID, quantity int) (*ShoppingCart, error) {
	if err := errors.Join(id.Validate(), bakedGoodsID.Validate(), validatePositive(quantity)); err != nil {
		return nil, err
	}

	c := &ShoppingCart{BaseAggregate: kernel.NewBaseAggregate(id)}
	c.Raise(ShoppingCartCreated{CartID: id}, c.apply)
	c.Raise(CartItemQuantityIncreased{
		CartID:       id,
		BakedGoodsID: bakedGoodsID,
		Delta:        quantity,
		NewQuantity:  quantity,
	}, c.apply)

	return c, nil
}

// Restore rebuilds a cart from its stored history.
func Restore(id kernel.UUID, history []kernel.DomainEvent) (*ShoppingCart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrCartIsNotConstructed
	}

	c := &ShoppingCart{BaseAggregate: kernel.NewBaseAggregate(id)}
	c.Replay(history, c.apply)
	return c, nil
}

func (c *ShoppingCart) Validate() error {
	if c == nil || c.ID().IsZero() {
		return ErrCartIsNotConstructed
	}
	return nil
}

// Items returns the lines in insertion order.
func (c *ShoppingCart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Quantity returns the quantity of a line and whether the line exists.
func (c *ShoppingCart) Quantity(bakedGoodsID kernel.UUID) (int, bool) {
	if i := c.indexOf(bakedGoodsID); i >= 0 {
		return c.items[i].Quantity, true
	}
	return 0, false
}

func (c *ShoppingCart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *ShoppingCart) IsDeleted() bool {
	return c.deleted
}

// OrderID is set once an order was created from the cart.
func (c *ShoppingCart) OrderID() *kernel.UUID {
	return c.orderID
}

// HasPositiveLine reports whether any line has quantity greater than zero.
func (c *ShoppingCart) HasPositiveLine() bool {
	for _, it := range c.items {
		if it.Quantity > 0 {
			return true
		}
	}
	return false
}

// AddItem merges quantity into an existing line or opens a new one.
func (c *ShoppingCart) AddItem(bakedGoodsID kernel.UUID, quantity int) error {
	if err := errors.Join(c.ensureOpen(), bakedGoodsID.Validate(), validatePositive(quantity)); err != nil {
		return err
	}

	current, _ := c.Quantity(bakedGoodsID)
	c.Raise(CartItemQuantityIncreased{
		CartID:       c.ID(),
		BakedGoodsID: bakedGoodsID,
		Delta:        quantity,
		NewQuantity:  current + quantity,
	}, c.apply)
	return nil
}

// SetQuantity overwrites the quantity of an existing line. Zero removes the line,
// a missing line is left untouched.
func (c *ShoppingCart) SetQuantity(bakedGoodsID kernel.UUID, quantity int) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}

	current, ok := c.Quantity(bakedGoodsID)
	if !ok {
		return nil
	}

	if quantity == 0 {
		c.Raise(CartItemRemoved{CartID: c.ID(), BakedGoodsID: bakedGoodsID}, c.apply)
		return nil
	}
	if quantity == current {
		return nil
	}

	c.Raise(CartItemQuantitySet{
		CartID:       c.ID(),
		BakedGoodsID: bakedGoodsID,
		Quantity:     quantity,
	}, c.apply)
	return nil
}

// AdjustQuantity changes a line by delta. Decreases are clamped at zero and a line
// that reaches zero stays until it is removed.
func (c *ShoppingCart) AdjustQuantity(bakedGoodsID kernel.UUID, delta int) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	current, ok := c.Quantity(bakedGoodsID)
	if !ok || delta == 0 {
		return nil
	}

	if delta > 0 {
		c.Raise(CartItemQuantityIncreased{
			CartID:       c.ID(),
			BakedGoodsID: bakedGoodsID,
			Delta:        delta,
			NewQuantity:  current + delta,
		}, c.apply)
		return nil
	}

	decrease := min(current, -delta)
	if decrease == 0 {
		return nil
	}

	c.Raise(CartItemQuantityDecreased{
		CartID:       c.ID(),
		BakedGoodsID: bakedGoodsID,
		Delta:        decrease,
		NewQuantity:  current - decrease,
	}, c.apply)
	return nil
}

// RemoveItem drops a line. Removing a missing line records nothing.
func (c *ShoppingCart) RemoveItem(bakedGoodsID kernel.UUID) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	if _, ok := c.Quantity(bakedGoodsID); !ok {
		return nil
	}

	c.Raise(CartItemRemoved{CartID: c.ID(), BakedGoodsID: bakedGoodsID}, c.apply)
	return nil
}

// CreateOrder freezes the positive lines at the given unit prices.
func (c *ShoppingCart) CreateOrder(
	orderID kernel.UUID,
	prices map[kernel.UUID]kernel.Money,
	customer kernel.GeoLocation,
) error {
	if err := errors.Join(c.ensureOpen(), orderID.Validate(), customer.Validate()); err != nil {
		return err
	}
	if !c.HasPositiveLine() {
		return ErrCartIsEmpty
	}

	lines := make([]OrderLine, 0, len(c.items))
	for _, it := range c.items {
		if it.Quantity == 0 {
			continue
		}
		price, ok := prices[it.BakedGoodsID]
		if !ok {
			return errs.NewPreconditionViolationErrorf("no price for baked good %s", it.BakedGoodsID)
		}
		if err := price.Validate(); err != nil {
			return err
		}
		lines = append(lines, OrderLine{
			BakedGoodsID: it.BakedGoodsID,
			Quantity:     it.Quantity,
			Price:        price,
			TotalPrice:   price.Times(it.Quantity),
		})
	}

	c.Raise(OrderCreatedFromCart{
		OrderID:     orderID,
		CartID:      c.ID(),
		Items:       lines,
		CustomerLat: customer.Lat(),
		CustomerLon: customer.Lon(),
	}, c.apply)
	return nil
}

// Delete closes the cart. Deleting a deleted cart records nothing.
func (c *ShoppingCart) Delete() error {
	if c.deleted {
		return nil
	}
	c.Raise(ShoppingCartDeleted{CartID: c.ID()}, c.apply)
	return nil
}

func (c *ShoppingCart) ensureOpen() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.deleted {
		return ErrCartIsDeleted
	}
	if c.orderID != nil {
		return ErrOrderAlreadyCreated
	}
	return nil
}

func (c *ShoppingCart) indexOf(bakedGoodsID kernel.UUID) int {
	for i, it := range c.items {
		if it.BakedGoodsID.IsEqual(bakedGoodsID) {
			return i
		}
	}
	return -1
}

func (c *ShoppingCart) setQuantity(bakedGoodsID kernel.UUID, quantity int) {
	if i := c.indexOf(bakedGoodsID); i >= 0 {
		c.items[i].Quantity = quantity
		return
	}
	c.items = append(c.items, Item{BakedGoodsID: bakedGoodsID, Quantity: quantity})
}

func (c *ShoppingCart) apply(e kernel.DomainEvent) {
	switch ev := e.(type) {
	case ShoppingCartCreated:
		c.items = nil
	case CartItemQuantityIncreased:
		c.setQuantity(ev.BakedGoodsID, ev.NewQuantity)
	case CartItemQuantityDecreased:
		c.setQuantity(ev.BakedGoodsID, ev.NewQuantity)
	case CartItemQuantitySet:
		c.setQuantity(ev.BakedGoodsID, ev.Quantity)
	case CartItemRemoved:
		if i := c.indexOf(ev.BakedGoodsID); i >= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
	case OrderCreatedFromCart:
		id := ev.OrderID
		c.orderID = &id
	case ShoppingCartDeleted:
		c.deleted = true
	}
}

func validatePositive(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

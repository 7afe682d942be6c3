// Package cartrepo stores shopping carts as event streams and keeps the cart
// projection in the same transaction.
package cartrepo

import (
	"bakery/internal/core/domain/model/cart"

	"github.com/google/uuid"
)

type CartDTO struct {
	ID      uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID *uuid.UUID    `gorm:"type:uuid"`
	Deleted bool          `gorm:"not null"`
	Items   []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "shopping_carts"
}

type CartItemDTO struct {
	CartID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	BakedGoodsID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"not null"`
	Quantity     int       `gorm:"not null"`
}

func (CartItemDTO) TableName() string {
	return "shopping_cart_items"
}

func fromDomain(c *cart.ShoppingCart) CartDTO {
	var orderID *uuid.UUID
	if id := c.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	items := make([]CartItemDTO, 0, len(c.Items()))
	for i, it := range c.Items() {
		items = append(items, CartItemDTO{
			CartID:       c.ID().Bytes(),
			BakedGoodsID: it.BakedGoodsID.Bytes(),
			Position:     i,
			Quantity:     it.Quantity,
		})
	}

	return CartDTO{
		ID:      c.ID().Bytes(),
		OrderID: orderID,
		Deleted: c.IsDeleted(),
		Items:   items,
	}
}

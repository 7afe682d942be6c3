// Package orderrepo provides data transfer objects and mapping functions for the
// order projection. Orders are plain rows, not event streams.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CartID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status      string         `gorm:"type:varchar(16);not null;index"`
	Subtotal    int64          `gorm:"not null"`
	CustomerLat float64        `gorm:"not null"`
	CustomerLon float64        `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a priced line of an order.
type OrderItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BakedGoodsID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Quantity     int       `gorm:"not null"`
	UnitPrice    int64     `gorm:"not null"`
	LineTotal    int64     `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, it := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      o.ID().Bytes(),
			BakedGoodsID: it.BakedGoodsID.Bytes(),
			Position:     i,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice.Cents(),
			LineTotal:    it.LineTotal.Cents(),
		})
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		CartID:      o.CartID().Bytes(),
		Status:      o.Status().String(),
		Subtotal:    o.Subtotal().Cents(),
		CustomerLat: o.Customer().Lat(),
		CustomerLon: o.Customer().Lon(),
		CreatedAt:   o.CreatedAt(),
		Items:       items,
	}
}

// toDomain reconstructs the order using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cartID, err := kernel.UUIDFromBytes(dto.CartID[:])
	if err != nil {
		return nil, err
	}
	customer, err := kernel.NewGeoLocation(dto.CustomerLat, dto.CustomerLon)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		goodID, idErr := kernel.UUIDFromBytes(it.BakedGoodsID[:])
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, order.Item{
			BakedGoodsID: goodID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    kernel.Money(it.UnitPrice),
			LineTotal:    kernel.Money(it.LineTotal),
		})
	}

	return order.RestoreOrder(id, cartID, items, customer, status, dto.CreatedAt)
}

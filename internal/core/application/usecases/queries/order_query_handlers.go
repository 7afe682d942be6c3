package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRow struct {
	ID          uuid.UUID
	CartID      uuid.UUID
	Status      string
	Subtotal    int64
	CustomerLat float64
	CustomerLon float64
	CreatedAt   time.Time
}

type orderItemRow struct {
	OrderID      uuid.UUID
	BakedGoodsID uuid.UUID
	Name         string
	Quantity     int
	UnitPrice    int64
	LineTotal    int64
}

const selectOrders = `
	SELECT
		id,
		cart_id,
		status,
		subtotal,
		customer_lat,
		customer_lon,
		created_at
	FROM orders`

const selectOrderItems = `
	SELECT
		order_id,
		baked_goods_id,
		name,
		quantity,
		unit_price,
		line_total
	FROM order_items`

// OrderQueryHandler reads the order projection.
type OrderQueryHandler struct {
	db *gorm.DB
}

func NewOrderQueryHandler(db *gorm.DB) OrderQueryHandler {
	return OrderQueryHandler{db: db}
}

func (h OrderQueryHandler) HandleGet(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(selectOrders+` WHERE id = ?`, query.OrderID().Bytes()).Scan(&rows).Error; err != nil {
		return OrderResponse{}, err
	}
	if len(rows) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	orders, err := h.assemble(ctx, rows)
	if err != nil {
		return OrderResponse{}, err
	}
	return orders[0], nil
}

func (h OrderQueryHandler) HandleList(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(selectOrders + ` ORDER BY created_at DESC, id`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return h.assemble(ctx, rows)
}

func (h OrderQueryHandler) assemble(ctx context.Context, rows []orderRow) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var items []orderItemRow
	if err := h.db.WithContext(ctx).
		Raw(selectOrderItems+` WHERE order_id IN ? ORDER BY position`, ids).
		Scan(&items).Error; err != nil {
		return nil, err
	}
	byOrder := make(map[uuid.UUID][]OrderItemResponse, len(rows))
	for _, it := range items {
		goodID, err := kernel.UUIDFromBytes(it.BakedGoodsID[:])
		if err != nil {
			return nil, err
		}
		byOrder[it.OrderID] = append(byOrder[it.OrderID], OrderItemResponse{
			BakedGoodsID: goodID,
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    kernel.Money(it.UnitPrice),
			LineTotal:    kernel.Money(it.LineTotal),
		})
	}

	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		cartID, err := kernel.UUIDFromBytes(row.CartID[:])
		if err != nil {
			return nil, err
		}
		customer, err := kernel.NewGeoLocation(row.CustomerLat, row.CustomerLon)
		if err != nil {
			return nil, err
		}
		orderItems := byOrder[row.ID]
		if orderItems == nil {
			orderItems = make([]OrderItemResponse, 0)
		}
		orders = append(orders, OrderResponse{
			ID:        id,
			CartID:    cartID,
			Status:    row.Status,
			Subtotal:  kernel.Money(row.Subtotal),
			Customer:  customer,
			CreatedAt: row.CreatedAt.UTC(),
			Items:     orderItems,
		})
	}
	return orders, nil
}

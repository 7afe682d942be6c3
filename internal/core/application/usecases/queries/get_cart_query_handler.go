package queries

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the cart projection. A cart is visible only while it
// is open and holds at least one positive line.
type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.baked_goods_id,
			i.quantity
		FROM shopping_carts c
		JOIN shopping_cart_items i ON i.cart_id = c.id
		WHERE c.id = ? AND c.deleted = ? AND i.quantity > 0
		ORDER BY i.position
	`, query.CartID().Bytes(), false).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	cart := CartResponse{ID: query.CartID(), Items: make([]CartItemResponse, 0)}
	for rows.Next() {
		var id uuid.UUID
		var item CartItemResponse
		if err = rows.Scan(&id, &item.Quantity); err != nil {
			return CartResponse{}, err
		}
		if item.BakedGoodsID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return CartResponse{}, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	if len(cart.Items) == 0 {
		return CartResponse{}, errs.NewObjectNotFoundError("cart", query.CartID())
	}
	return cart, nil
}

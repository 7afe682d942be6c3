package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

// GetCartQuery reads one shopping cart.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

type CartItemResponse struct {
	BakedGoodsID kernel.UUID
	Quantity     int
}

type CartResponse struct {
	ID    kernel.UUID
	Items []CartItemResponse
}

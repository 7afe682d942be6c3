package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed   = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")
	ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")
)

type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ListOrdersQuery lists every order, newest first.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type OrderItemResponse struct {
	BakedGoodsID kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	LineTotal    kernel.Money
}

type OrderResponse struct {
	ID        kernel.UUID
	CartID    kernel.UUID
	Status    string
	Subtotal  kernel.Money
	Customer  kernel.GeoLocation
	CreatedAt time.Time
	Items     []OrderItemResponse
}

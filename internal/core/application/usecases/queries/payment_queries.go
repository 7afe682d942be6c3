package queries

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New("GetPaymentQuery must be created via NewGetPaymentQuery constructor")

// GetPaymentQuery reads the payment of an order.
type GetPaymentQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPaymentQuery(orderID kernel.UUID) (GetPaymentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

func (q GetPaymentQuery) OrderID() kernel.UUID {
	return q.orderID
}

type PaymentItemResponse struct {
	BakedGoodsID kernel.UUID
	Quantity     int
	Price        kernel.Money
	TotalPrice   kernel.Money
}

type PaymentResponse struct {
	OrderID       kernel.UUID
	CartID        kernel.UUID
	Status        string
	Total         kernel.Money
	TransactionID string
	FailureReason string
	WalletAddress string
	Customer      kernel.GeoLocation
	Items         []PaymentItemResponse
}

type GetPaymentQueryHandler struct {
	db *gorm.DB
}

func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	var row struct {
		CartID        uuid.UUID
		Status        string
		Total         int64
		TransactionID string
		FailureReason string
		WalletAddress string
		CustomerLat   float64
		CustomerLon   float64
	}
	res := h.db.WithContext(ctx).Raw(`
		SELECT
			cart_id,
			status,
			total,
			transaction_id,
			failure_reason,
			wallet_address,
			customer_lat,
			customer_lon
		FROM payments
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if res.Error != nil {
		return PaymentResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return PaymentResponse{}, errs.NewObjectNotFoundError("payment", query.OrderID())
	}

	cartID, err := kernel.UUIDFromBytes(row.CartID[:])
	if err != nil {
		return PaymentResponse{}, err
	}
	customer, err := kernel.NewGeoLocation(row.CustomerLat, row.CustomerLon)
	if err != nil {
		return PaymentResponse{}, err
	}

	payment := PaymentResponse{
		OrderID:       query.OrderID(),
		CartID:        cartID,
		Status:        row.Status,
		Total:         kernel.Money(row.Total),
		TransactionID: row.TransactionID,
		FailureReason: row.FailureReason,
		WalletAddress: row.WalletAddress,
		Customer:      customer,
		Items:         make([]PaymentItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			baked_goods_id,
			quantity,
			price,
			total_price
		FROM payment_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return PaymentResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var price, total int64
		var item PaymentItemResponse
		if err = rows.Scan(&id, &item.Quantity, &price, &total); err != nil {
			return PaymentResponse{}, err
		}
		if item.BakedGoodsID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return PaymentResponse{}, err
		}
		item.Price = kernel.Money(price)
		item.TotalPrice = kernel.Money(total)
		payment.Items = append(payment.Items, item)
	}
	if err = rows.Err(); err != nil {
		return PaymentResponse{}, err
	}

	return payment, nil
}

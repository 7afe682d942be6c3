// Package paymentrepo stores payments as event streams keyed by their order and
// keeps the payment projection.
package paymentrepo

import (
	"bakery/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	OrderID       uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CartID        uuid.UUID        `gorm:"type:uuid;not null"`
	Status        string           `gorm:"type:varchar(16);not null"`
	Total         int64            `gorm:"not null"`
	ItemCount     int              `gorm:"not null"`
	TransactionID string           `gorm:"type:varchar(128);not null"`
	FailureReason string           `gorm:"type:text;not null"`
	WalletAddress string           `gorm:"type:varchar(255);not null"`
	CustomerLat   float64          `gorm:"not null"`
	CustomerLon   float64          `gorm:"not null"`
	Items         []PaymentItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

type PaymentItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BakedGoodsID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"not null"`
	Quantity     int       `gorm:"not null"`
	Price        int64     `gorm:"not null"`
	TotalPrice   int64     `gorm:"not null"`
}

func (PaymentItemDTO) TableName() string {
	return "payment_items"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	items := make([]PaymentItemDTO, 0, len(p.Items()))
	for i, it := range p.Items() {
		items = append(items, PaymentItemDTO{
			OrderID:      p.OrderID().Bytes(),
			BakedGoodsID: it.BakedGoodsID.Bytes(),
			Position:     i,
			Quantity:     it.Quantity,
			Price:        it.Price.Cents(),
			TotalPrice:   it.TotalPrice.Cents(),
		})
	}

	return PaymentDTO{
		OrderID:       p.OrderID().Bytes(),
		CartID:        p.CartID().Bytes(),
		Status:        p.Status().String(),
		Total:         p.Total().Cents(),
		ItemCount:     p.ItemCount(),
		TransactionID: p.TransactionID(),
		FailureReason: p.FailureReason(),
		WalletAddress: p.WalletAddress(),
		CustomerLat:   p.Customer().Lat(),
		CustomerLon:   p.Customer().Lon(),
		Items:         items,
	}
}

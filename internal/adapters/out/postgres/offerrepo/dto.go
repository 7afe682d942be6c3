// Package offerrepo stores delivery offers as event streams and keeps the offer
// projection indexed by delivery and courier.
package offerrepo

import (
	"time"

	"bakery/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

type OfferDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID   uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_delivery_offers_delivery_courier"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null"`
	CourierID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_delivery_offers_delivery_courier"`
	ApproxLat    float64    `gorm:"not null"`
	ApproxLon    float64    `gorm:"not null"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	DroppedAt    time.Time  `gorm:"not null"`
	OfferedAt    time.Time  `gorm:"not null"`
	AcceptedAt   *time.Time
	CancelReason string `gorm:"type:text;not null"`
}

func (OfferDTO) TableName() string {
	return "delivery_offers"
}

func fromDomain(o *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:           o.ID().Bytes(),
		DeliveryID:   o.DeliveryID().Bytes(),
		OrderID:      o.OrderID().Bytes(),
		CourierID:    o.CourierID().Bytes(),
		ApproxLat:    o.ApproximateLocation().Lat(),
		ApproxLon:    o.ApproximateLocation().Lon(),
		Status:       o.Status().String(),
		DroppedAt:    o.DroppedAt(),
		OfferedAt:    o.OfferedAt(),
		AcceptedAt:   o.AcceptedAt(),
		CancelReason: o.CancelReason(),
	}
}

// Package deliveryrepo stores package deliveries as event streams and keeps the
// delivery projection used for lookups by order.
package deliveryrepo

import (
	"time"

	"bakery/internal/core/domain/model/delivery"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	TransactionID       string     `gorm:"type:varchar(128);not null"`
	Status              string     `gorm:"type:varchar(32);not null;index"`
	CustomerLat         float64    `gorm:"not null"`
	CustomerLon         float64    `gorm:"not null"`
	BakerDropLat        *float64
	BakerDropLon        *float64
	BakerDropPhotoURL   *string `gorm:"column:baker_drop_photo_url"`
	BakerDroppedAt      *time.Time
	CourierID           *uuid.UUID `gorm:"type:uuid;index"`
	OfferID             *uuid.UUID `gorm:"type:uuid"`
	PickedUpAt          *time.Time
	CourierDropLat      *float64
	CourierDropLon      *float64
	CourierDropPhotoURL *string `gorm:"column:courier_drop_photo_url"`
	CourierDroppedAt    *time.Time
	RetrievedAt         *time.Time
	DeliveredAt         *time.Time
}

func (DeliveryDTO) TableName() string {
	return "package_deliveries"
}

func fromDomain(d *delivery.PackageDelivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:            d.ID().Bytes(),
		OrderID:       d.OrderID().Bytes(),
		TransactionID: d.TransactionID(),
		Status:        d.Status().String(),
		CustomerLat:   d.Customer().Lat(),
		CustomerLon:   d.Customer().Lon(),
		PickedUpAt:    d.PickedUpAt(),
		RetrievedAt:   d.RetrievedAt(),
		DeliveredAt:   d.DeliveredAt(),
	}

	if drop := d.BakerDrop(); drop != nil {
		lat, lon, photo, at := drop.Location.Lat(), drop.Location.Lon(), drop.PhotoURL, drop.DroppedAt
		dto.BakerDropLat, dto.BakerDropLon, dto.BakerDropPhotoURL, dto.BakerDroppedAt = &lat, &lon, &photo, &at
	}
	if drop := d.CourierDrop(); drop != nil {
		lat, lon, photo, at := drop.Location.Lat(), drop.Location.Lon(), drop.PhotoURL, drop.DroppedAt
		dto.CourierDropLat, dto.CourierDropLon, dto.CourierDropPhotoURL, dto.CourierDroppedAt = &lat, &lon, &photo, &at
	}
	if id := d.CourierID(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}
	if id := d.OfferID(); id != nil {
		raw := id.Bytes()
		dto.OfferID = &raw
	}
	return dto
}

// Package courierrepo provides persistence for the courier queue. Couriers are
// event streams; the queue table lists who is available and where.
package courierrepo

import (
	"time"

	"bakery/internal/core/domain/model/courier"

	"github.com/google/uuid"
)

// CourierQueueDTO is the queue projection of one courier.
type CourierQueueDTO struct {
	CourierID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat           float64   `gorm:"not null"`
	Lon           float64   `gorm:"not null"`
	Available     bool      `gorm:"not null;index"`
	LastUpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "courier_queue".
func (CourierQueueDTO) TableName() string {
	return "courier_queue"
}

// fromDomain converts a courier to its queue row.
func fromDomain(c *courier.Courier) CourierQueueDTO {
	return CourierQueueDTO{
		CourierID:     c.ID().Bytes(),
		Lat:           c.Location().Lat(),
		Lon:           c.Location().Lon(),
		Available:     c.IsAvailable(),
		LastUpdatedAt: c.LastUpdatedAt(),
	}
}

// Package locationrepo stores customer-chosen locations.
package locationrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChosenLocationDTO struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat float64   `gorm:"not null"`
	Lon float64   `gorm:"not null"`
}

func (ChosenLocationDTO) TableName() string {
	return "chosen_locations"
}

// GormChosenLocationRepository implements ports.ChosenLocationRepository.
type GormChosenLocationRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*location.ChosenLocation]
}

func NewGormChosenLocationRepository(
	db *gorm.DB,
	registry *eventstore.Registry,
	tracker eventstore.Tracker,
) *GormChosenLocationRepository {
	return &GormChosenLocationRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), location.StreamType, location.Restore, tracker),
	}
}

func (r *GormChosenLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.ChosenLocation, error) {
	return r.stream.Load(ctx, id)
}

func (r *GormChosenLocationRepository) Save(ctx context.Context, aggregate *location.ChosenLocation) error {
	appended, err := r.stream.Append(ctx, aggregate)
	if err != nil || !appended {
		return err
	}

	dto := ChosenLocationDTO{
		ID:  aggregate.ID().Bytes(),
		Lat: aggregate.Point().Lat(),
		Lon: aggregate.Point().Lon(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

package courierrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*courier.Courier]
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(
	db *gorm.DB,
	registry *eventstore.Registry,
	tracker eventstore.Tracker,
) *GormCourierRepository {
	return &GormCourierRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), courier.StreamType, courier.Restore, tracker),
	}
}

// Get rebuilds a courier from its stream.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	return r.stream.Load(ctx, id)
}

// Save appends the courier's changes and refreshes its queue row.
func (r *GormCourierRepository) Save(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	appended, err := r.stream.Append(ctx, aggregate)
	if err != nil || !appended {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

// GetAllAvailable loads every courier the queue lists as available.
//
// Example:
//
//	couriers, err := repo.GetAllAvailable(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get available couriers: %w", err)
//	}
func (r *GormCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&CourierQueueDTO{}).
		Where("available = ?", true).
		Order("courier_id").
		Pluck("courier_id", &ids).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(ids))
	for _, raw := range ids {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		c, err := r.stream.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

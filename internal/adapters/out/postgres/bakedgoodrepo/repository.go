package bakedgoodrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/bakedgood"
	"bakery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBakedGoodRepository implements ports.BakedGoodRepository.
type GormBakedGoodRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*bakedgood.BakedGood]
}

func NewGormBakedGoodRepository(
	db *gorm.DB,
	registry *eventstore.Registry,
	tracker eventstore.Tracker,
) *GormBakedGoodRepository {
	return &GormBakedGoodRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), bakedgood.StreamType, bakedgood.Restore, tracker),
	}
}

func (r *GormBakedGoodRepository) Get(ctx context.Context, id kernel.UUID) (*bakedgood.BakedGood, error) {
	return r.stream.Load(ctx, id)
}

func (r *GormBakedGoodRepository) Save(ctx context.Context, aggregate *bakedgood.BakedGood) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	appended, err := r.stream.Append(ctx, aggregate)
	if err != nil || !appended {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err = db.Clauses(clause.OnConflict{UpdateAll: true}).Omit("Reviews").Create(&dto).Error; err != nil {
		return err
	}
	if len(dto.Reviews) == 0 {
		return nil
	}
	// Reviews are append-only, so existing rows stay as they are.
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Reviews).Error
}

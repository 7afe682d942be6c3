package cartrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository.
type GormCartRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*cart.ShoppingCart]
}

func NewGormCartRepository(db *gorm.DB, registry *eventstore.Registry, tracker eventstore.Tracker) *GormCartRepository {
	return &GormCartRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), cart.StreamType, cart.Restore, tracker),
	}
}

func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.ShoppingCart, error) {
	return r.stream.Load(ctx, id)
}

// Save appends the changes and rewrites the cart lines of the projection.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.ShoppingCart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	appended, err := r.stream.Append(ctx, aggregate)
	if err != nil || !appended {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err = db.Clauses(clause.OnConflict{UpdateAll: true}).Omit("Items").Create(&dto).Error; err != nil {
		return err
	}
	if err = db.Where("cart_id = ?", dto.ID).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) == 0 {
		return nil
	}
	return db.Create(&dto.Items).Error
}

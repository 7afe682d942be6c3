package offerrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOfferRepository implements ports.OfferRepository.
type GormOfferRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*offer.Offer]
}

func NewGormOfferRepository(db *gorm.DB, registry *eventstore.Registry, tracker eventstore.Tracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), offer.StreamType, offer.Restore, tracker),
	}
}

func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	return r.stream.Load(ctx, id)
}

func (r *GormOfferRepository) Save(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	appended, err := r.stream.Append(ctx, aggregate)
	if err != nil || !appended {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

// GetByDelivery loads every offer of the delivery in the order they were made.
func (r *GormOfferRepository) GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*offer.Offer, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("offered_at, id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(ids))
	for _, raw := range ids {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		o, err := r.stream.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (r *GormOfferRepository) ExistsForCourier(ctx context.Context, deliveryID kernel.UUID, courierID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OfferDTO{}).
		Where("delivery_id = ? AND courier_id = ?", deliveryID.Bytes(), courierID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

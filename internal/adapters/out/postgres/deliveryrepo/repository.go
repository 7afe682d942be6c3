package deliveryrepo

import (
	"context"
	"errors"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/delivery"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository.
type GormDeliveryRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*delivery.PackageDelivery]
}

func NewGormDeliveryRepository(
	db *gorm.DB,
	registry *eventstore.Registry,
	tracker eventstore.Tracker,
) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), delivery.StreamType, delivery.Restore, tracker),
	}
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.PackageDelivery, error) {
	return r.stream.Load(ctx, id)
}

// GetByOrderID resolves the delivery id through the projection, then loads the stream.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.PackageDelivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).Select("id").First(&dto, "order_id = ?", orderID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("delivery for order", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return r.stream.Load(ctx, id)
}

func (r *GormDeliveryRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDeliveryRepository) Save(ctx context.Context, aggregate *delivery.PackageDelivery) error {
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

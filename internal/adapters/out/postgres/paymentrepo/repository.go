package paymentrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/eventstore"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements ports.PaymentRepository.
type GormPaymentRepository struct {
	db     *gorm.DB
	stream eventstore.Stream[*payment.Payment]
}

func NewGormPaymentRepository(
	db *gorm.DB,
	registry *eventstore.Registry,
	tracker eventstore.Tracker,
) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:     db,
		stream: eventstore.NewStream(eventstore.NewStore(db, registry), payment.StreamType, payment.Restore, tracker),
	}
}

func (r *GormPaymentRepository) Get(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	return r.stream.Load(ctx, orderID)
}

func (r *GormPaymentRepository) Exists(ctx context.Context, orderID kernel.UUID) (bool, error) {
	return r.stream.Exists(ctx, orderID)
}

func (r *GormPaymentRepository) Save(ctx context.Context, aggregate *payment.Payment) error {
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
	if len(dto.Items) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Items).Error
}

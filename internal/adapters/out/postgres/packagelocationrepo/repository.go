// Package packagelocationrepo keeps the exact pickup point of a dropped package
// and its anonymized copy in separate tables.
package packagelocationrepo

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PackageLocationDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null"`
	Lat        float64   `gorm:"not null"`
	Lon        float64   `gorm:"not null"`
	PhotoURL   string    `gorm:"column:photo_url;type:text;not null"`
	DroppedAt  time.Time `gorm:"not null"`
}

func (PackageLocationDTO) TableName() string {
	return "package_locations"
}

// AnonymizedPackageLocationDTO has no photo column on purpose.
type AnonymizedPackageLocationDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null"`
	Lat        float64   `gorm:"not null"`
	Lon        float64   `gorm:"not null"`
	DroppedAt  time.Time `gorm:"not null"`
}

func (AnonymizedPackageLocationDTO) TableName() string {
	return "package_locations_anonymized"
}

// GormPackageLocationRepository implements ports.PackageLocationRepository.
type GormPackageLocationRepository struct {
	db *gorm.DB
}

func NewGormPackageLocationRepository(db *gorm.DB) *GormPackageLocationRepository {
	return &GormPackageLocationRepository{db: db}
}

// Save writes both records. Saving the same drop again overwrites them.
func (r *GormPackageLocationRepository) Save(ctx context.Context, info packagelocation.Info) error {
	if err := info.Validate(); err != nil {
		return err
	}

	anon := info.Anonymize()
	exact := PackageLocationDTO{
		DeliveryID: info.DeliveryID().Bytes(),
		OrderID:    info.OrderID().Bytes(),
		Lat:        info.Location().Lat(),
		Lon:        info.Location().Lon(),
		PhotoURL:   info.PhotoURL(),
		DroppedAt:  info.DroppedAt(),
	}
	approx := AnonymizedPackageLocationDTO{
		DeliveryID: anon.DeliveryID().Bytes(),
		OrderID:    anon.OrderID().Bytes(),
		Lat:        anon.Location().Lat(),
		Lon:        anon.Location().Lon(),
		DroppedAt:  anon.DroppedAt(),
	}

	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&exact).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&approx).Error
}

func (r *GormPackageLocationRepository) GetExact(ctx context.Context, deliveryID kernel.UUID) (packagelocation.Info, error) {
	if err := deliveryID.Validate(); err != nil {
		return packagelocation.Info{}, err
	}

	var dto PackageLocationDTO
	err := r.db.WithContext(ctx).First(&dto, "delivery_id = ?", deliveryID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return packagelocation.Info{}, errs.NewObjectNotFoundError("package location", deliveryID.String())
	}
	if err != nil {
		return packagelocation.Info{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return packagelocation.Info{}, err
	}
	location, err := kernel.NewGeoLocation(dto.Lat, dto.Lon)
	if err != nil {
		return packagelocation.Info{}, err
	}
	return packagelocation.NewInfo(deliveryID, orderID, location, dto.PhotoURL, dto.DroppedAt)
}

func (r *GormPackageLocationRepository) GetAnonymized(
	ctx context.Context,
	deliveryID kernel.UUID,
) (packagelocation.Anonymized, error) {
	if err := deliveryID.Validate(); err != nil {
		return packagelocation.Anonymized{}, err
	}

	var dto AnonymizedPackageLocationDTO
	err := r.db.WithContext(ctx).First(&dto, "delivery_id = ?", deliveryID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return packagelocation.Anonymized{}, errs.NewObjectNotFoundError("package location", deliveryID.String())
	}
	if err != nil {
		return packagelocation.Anonymized{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return packagelocation.Anonymized{}, err
	}
	location, err := kernel.NewGeoLocation(dto.Lat, dto.Lon)
	if err != nil {
		return packagelocation.Anonymized{}, err
	}
	return packagelocation.RestoreAnonymized(deliveryID, orderID, location, dto.DroppedAt), nil
}

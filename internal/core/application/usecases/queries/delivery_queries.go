package queries

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery or NewGetDeliveryByOrderQuery constructor",
)

// GetDeliveryQuery reads a package delivery by its own id or by its order id.
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	deliveryID *kernel.UUID
	orderID    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: &deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetDeliveryByOrderQuery(orderID kernel.UUID) (GetDeliveryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DropResponse is where a package was left.
type DropResponse struct {
	Location  kernel.GeoLocation
	PhotoURL  string
	DroppedAt time.Time
}

type DeliveryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	TransactionID string
	Status        string
	Customer      kernel.GeoLocation
	BakerDrop     *DropResponse
	CourierID     *kernel.UUID
	OfferID       *kernel.UUID
	PickedUpAt    *time.Time
	CourierDrop   *DropResponse
	RetrievedAt   *time.Time
	DeliveredAt   *time.Time
}

type deliveryRow struct {
	ID                  uuid.UUID
	OrderID             uuid.UUID
	TransactionID       string
	Status              string
	CustomerLat         float64
	CustomerLon         float64
	BakerDropLat        *float64
	BakerDropLon        *float64
	BakerDropPhotoURL   *string
	BakerDroppedAt      *time.Time
	CourierID           *uuid.UUID
	OfferID             *uuid.UUID
	PickedUpAt          *time.Time
	CourierDropLat      *float64
	CourierDropLon      *float64
	CourierDropPhotoURL *string
	CourierDroppedAt    *time.Time
	RetrievedAt         *time.Time
	DeliveredAt         *time.Time
}

// GetDeliveryQueryHandler reads the package delivery projection.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	column, key := "id", query.deliveryID
	if key == nil {
		column, key = "order_id", query.orderID
	}

	var row deliveryRow
	res := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			transaction_id,
			status,
			customer_lat,
			customer_lon,
			baker_drop_lat,
			baker_drop_lon,
			baker_drop_photo_url,
			baker_dropped_at,
			courier_id,
			offer_id,
			picked_up_at,
			courier_drop_lat,
			courier_drop_lon,
			courier_drop_photo_url,
			courier_dropped_at,
			retrieved_at,
			delivered_at
		FROM package_deliveries
		WHERE `+column+` = ?
	`, key.Bytes()).Scan(&row)
	if res.Error != nil {
		return DeliveryResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", *key)
	}

	return row.toResponse()
}

func (r deliveryRow) toResponse() (DeliveryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	customer, err := kernel.NewGeoLocation(r.CustomerLat, r.CustomerLon)
	if err != nil {
		return DeliveryResponse{}, err
	}

	d := DeliveryResponse{
		ID:            id,
		OrderID:       orderID,
		TransactionID: r.TransactionID,
		Status:        r.Status,
		Customer:      customer,
		PickedUpAt:    utc(r.PickedUpAt),
		RetrievedAt:   utc(r.RetrievedAt),
		DeliveredAt:   utc(r.DeliveredAt),
	}
	if d.BakerDrop, err = toDrop(r.BakerDropLat, r.BakerDropLon, r.BakerDropPhotoURL, r.BakerDroppedAt); err != nil {
		return DeliveryResponse{}, err
	}
	if d.CourierDrop, err = toDrop(r.CourierDropLat, r.CourierDropLon, r.CourierDropPhotoURL, r.CourierDroppedAt); err != nil {
		return DeliveryResponse{}, err
	}
	if d.CourierID, err = optionalUUID(r.CourierID); err != nil {
		return DeliveryResponse{}, err
	}
	if d.OfferID, err = optionalUUID(r.OfferID); err != nil {
		return DeliveryResponse{}, err
	}
	return d, nil
}

func toDrop(lat, lon *float64, photoURL *string, at *time.Time) (*DropResponse, error) {
	if lat == nil || lon == nil || at == nil {
		return nil, nil //nolint:nilnil // no drop yet
	}
	location, err := kernel.NewGeoLocation(*lat, *lon)
	if err != nil {
		return nil, err
	}
	drop := &DropResponse{Location: location, DroppedAt: at.UTC()}
	if photoURL != nil {
		drop.PhotoURL = *photoURL
	}
	return drop, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent
	}
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

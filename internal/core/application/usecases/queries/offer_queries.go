package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListOffersQueryIsNotConstructed = errors.New("ListOffersQuery must be created via NewListOffersQuery constructor")

// ListOffersQuery lists delivery offers, filtered by any combination of courier,
// delivery and status.
type ListOffersQuery struct { //nolint:recvcheck //using for validation
	courierID  *kernel.UUID
	deliveryID *kernel.UUID
	status     *offer.Status

	guard guard.ConstructorGuard
}

func NewListOffersQuery(courierID *kernel.UUID, deliveryID *kernel.UUID, status *offer.Status) (ListOffersQuery, error) {
	var courierErr, deliveryErr, statusErr error
	if courierID != nil {
		courierErr = courierID.Validate()
	}
	if deliveryID != nil {
		deliveryErr = deliveryID.Validate()
	}
	if status != nil {
		statusErr = status.Validate()
	}
	if err := errors.Join(courierErr, deliveryErr, statusErr); err != nil {
		return ListOffersQuery{}, err
	}

	return ListOffersQuery{
		courierID:  courierID,
		deliveryID: deliveryID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOffersQuery) Validate() error {
	return q.guard.Validate(ErrListOffersQueryIsNotConstructed)
}

// OfferResponse never carries the exact pickup point.
type OfferResponse struct {
	ID                  kernel.UUID
	DeliveryID          kernel.UUID
	OrderID             kernel.UUID
	CourierID           kernel.UUID
	ApproximateLocation kernel.GeoLocation
	Status              string
	DroppedAt           time.Time
	OfferedAt           time.Time
	AcceptedAt          *time.Time
	CancelReason        string
}

type ListOffersQueryHandler struct {
	db *gorm.DB
}

func NewListOffersQueryHandler(db *gorm.DB) ListOffersQueryHandler {
	return ListOffersQueryHandler{db: db}
}

func (h ListOffersQueryHandler) Handle(ctx context.Context, query ListOffersQuery) ([]OfferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if query.courierID != nil {
		where = append(where, "courier_id = ?")
		args = append(args, query.courierID.Bytes())
	}
	if query.deliveryID != nil {
		where = append(where, "delivery_id = ?")
		args = append(args, query.deliveryID.Bytes())
	}
	if query.status != nil {
		where = append(where, "status = ?")
		args = append(args, query.status.String())
	}

	sql := `
		SELECT
			id,
			delivery_id,
			order_id,
			courier_id,
			approx_lat,
			approx_lon,
			status,
			dropped_at,
			offered_at,
			accepted_at,
			cancel_reason
		FROM delivery_offers`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY offered_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]OfferResponse, 0)
	for rows.Next() {
		var id, deliveryID, orderID, courierID uuid.UUID
		var lat, lon float64
		var o OfferResponse
		if err = rows.Scan(
			&id,
			&deliveryID,
			&orderID,
			&courierID,
			&lat,
			&lon,
			&o.Status,
			&o.DroppedAt,
			&o.OfferedAt,
			&o.AcceptedAt,
			&o.CancelReason,
		); err != nil {
			return nil, err
		}
		if err = errors.Join(
			assignUUID(&o.ID, id),
			assignUUID(&o.DeliveryID, deliveryID),
			assignUUID(&o.OrderID, orderID),
			assignUUID(&o.CourierID, courierID),
		); err != nil {
			return nil, err
		}
		if o.ApproximateLocation, err = kernel.NewGeoLocation(lat, lon); err != nil {
			return nil, err
		}
		o.DroppedAt = o.DroppedAt.UTC()
		o.OfferedAt = o.OfferedAt.UTC()
		o.AcceptedAt = utc(o.AcceptedAt)
		offers = append(offers, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}

func assignUUID(dst *kernel.UUID, src uuid.UUID) error {
	id, err := kernel.UUIDFromBytes(src[:])
	if err != nil {
		return err
	}
	*dst = id
	return nil
}

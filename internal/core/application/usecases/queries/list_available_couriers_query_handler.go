package queries

import (
	"context"
	"sort"
	"time"

	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableCouriersQueryHandler reads the courier queue projection.
type ListAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableCouriersQueryHandler(db *gorm.DB) ListAvailableCouriersQueryHandler {
	return ListAvailableCouriersQueryHandler{db: db}
}

// Handle returns available couriers ordered by id, or by distance for near queries.
func (h ListAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			courier_id,
			lat,
			lon,
			last_updated_at
		FROM courier_queue
		WHERE available = ?
		ORDER BY courier_id
	`, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var lat, lon float64
		var lastUpdatedAt time.Time

		if err = rows.Scan(&id, &lat, &lon, &lastUpdatedAt); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		location, locErr := kernel.NewGeoLocation(lat, lon)
		if locErr != nil {
			return nil, locErr
		}

		c := CourierResponse{ID: courierID, Location: location, LastUpdatedAt: lastUpdatedAt.UTC()}
		if near := query.Near(); near != nil {
			distance := kernel.HaversineKm(near.Lat(), near.Lon(), lat, lon)
			if distance > query.RadiusKm() {
				continue
			}
			c.DistanceKm = &distance
		}
		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if query.Near() != nil {
		sort.SliceStable(couriers, func(i, j int) bool {
			return *couriers[i].DistanceKm < *couriers[j].DistanceKm
		})
	}

	return couriers, nil
}

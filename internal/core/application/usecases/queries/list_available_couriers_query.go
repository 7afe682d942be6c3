// Package queries contains read operations for retrieving system state.
// Queries read the projections kept next to the event store and never touch
// event streams, so results may trail the latest commands.
package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrListAvailableCouriersQueryIsNotConstructed = errors.New(
		"ListAvailableCouriersQuery must be created via NewListAvailableCouriersQuery constructor",
	)
)

// ListAvailableCouriersQuery lists couriers waiting for offers, optionally only those
// within radiusKm of a point.
//
// Example:
//
//	query, err := NewListAvailableCouriersNearQuery(pickup, 5)
//	couriers, err := NewListAvailableCouriersQueryHandler(db).Handle(ctx, query)
type ListAvailableCouriersQuery struct { //nolint:recvcheck //using for validation
	near     *kernel.GeoLocation
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewListAvailableCouriersQuery lists every available courier.
func NewListAvailableCouriersQuery() ListAvailableCouriersQuery {
	return ListAvailableCouriersQuery{guard: guard.NewConstructorGuard()}
}

// NewListAvailableCouriersNearQuery lists available couriers within radiusKm of near.
func NewListAvailableCouriersNearQuery(near kernel.GeoLocation, radiusKm float64) (ListAvailableCouriersQuery, error) {
	if err := near.Validate(); err != nil {
		return ListAvailableCouriersQuery{}, err
	}
	if radiusKm <= 0 {
		return ListAvailableCouriersQuery{}, errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, "any")
	}

	return ListAvailableCouriersQuery{
		near:     &near,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableCouriersQueryIsNotConstructed)
}

func (q ListAvailableCouriersQuery) Near() *kernel.GeoLocation {
	return q.near
}

func (q ListAvailableCouriersQuery) RadiusKm() float64 {
	return q.radiusKm
}

// CourierResponse is an available courier. DistanceKm is set only for near queries.
type CourierResponse struct {
	ID            kernel.UUID
	Location      kernel.GeoLocation
	LastUpdatedAt time.Time
	DistanceKm    *float64
}

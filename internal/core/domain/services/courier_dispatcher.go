package services

import (
	"sort"

	"bakery/internal/core/domain/model/courier"
	"bakery/internal/core/domain/model/kernel"
)

// DispatchRadiusKm is how far a courier may be from a dropped package to get an offer.
const DispatchRadiusKm = 5.0

// Candidate is a courier selected for an offer.
type Candidate struct {
	Courier    *courier.Courier
	DistanceKm float64
}

// CourierDispatcher matches a pickup point against available couriers.
type CourierDispatcher struct {
	radiusKm float64
}

func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{radiusKm: DispatchRadiusKm}
}

// NewCourierDispatcherWithRadius is used when the radius is configured.
func NewCourierDispatcherWithRadius(radiusKm float64) CourierDispatcher {
	return CourierDispatcher{radiusKm: radiusKm}
}

func (d CourierDispatcher) RadiusKm() float64 {
	if d.radiusKm <= 0 {
		return DispatchRadiusKm
	}
	return d.radiusKm
}

// Match returns every available courier within the radius of pickup, nearest
// first. An empty result is not an error.
func (d CourierDispatcher) Match(pickup kernel.GeoLocation, couriers []*courier.Courier) ([]Candidate, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAvailable() {
			continue
		}

		distance, err := c.DistanceKmTo(pickup)
		if err != nil {
			return nil, err
		}
		if distance > d.RadiusKm() {
			continue
		}

		candidates = append(candidates, Candidate{Courier: c, DistanceKm: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})
	return candidates, nil
}

// Package packagelocation holds where a package waits for its courier: the exact
// drop point with the baker's photo, and an anonymized copy rounded to two
// decimals that can be shown to any offered courier.
package packagelocation

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrInfoIsNotConstructed = errors.New("package location must be created via NewInfo")

// Info is the exact pickup location of a delivery.
type Info struct {
	deliveryID kernel.UUID
	orderID    kernel.UUID
	location   kernel.GeoLocation
	photoURL   string
	droppedAt  time.Time
	guard      guard.ConstructorGuard
}

func NewInfo(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	location kernel.GeoLocation,
	photoURL string,
	droppedAt time.Time,
) (Info, error) {
	if err := errors.Join(deliveryID.Validate(), orderID.Validate(), location.Validate()); err != nil {
		return Info{}, err
	}

	return Info{
		deliveryID: deliveryID,
		orderID:    orderID,
		location:   location,
		photoURL:   photoURL,
		droppedAt:  droppedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (i Info) Validate() error {
	return i.guard.Validate(ErrInfoIsNotConstructed)
}

func (i Info) DeliveryID() kernel.UUID {
	return i.deliveryID
}

func (i Info) OrderID() kernel.UUID {
	return i.orderID
}

func (i Info) Location() kernel.GeoLocation {
	return i.location
}

func (i Info) PhotoURL() string {
	return i.photoURL
}

func (i Info) DroppedAt() time.Time {
	return i.droppedAt
}

// Anonymize drops the photo and rounds the coordinates.
func (i Info) Anonymize() Anonymized {
	return Anonymized{
		deliveryID: i.deliveryID,
		orderID:    i.orderID,
		location:   i.location.Approximate(),
		droppedAt:  i.droppedAt,
	}
}

// Anonymized is the pickup location as disclosed to couriers far from the package.
// It never carries a photo.
type Anonymized struct {
	deliveryID kernel.UUID
	orderID    kernel.UUID
	location   kernel.GeoLocation
	droppedAt  time.Time
}

// RestoreAnonymized rebuilds an anonymized record; the location is rounded again.
func RestoreAnonymized(deliveryID, orderID kernel.UUID, location kernel.GeoLocation, droppedAt time.Time) Anonymized {
	return Anonymized{
		deliveryID: deliveryID,
		orderID:    orderID,
		location:   location.Approximate(),
		droppedAt:  droppedAt.UTC(),
	}
}

func (a Anonymized) DeliveryID() kernel.UUID {
	return a.deliveryID
}

func (a Anonymized) OrderID() kernel.UUID {
	return a.orderID
}

func (a Anonymized) Location() kernel.GeoLocation {
	return a.location
}

func (a Anonymized) DroppedAt() time.Time {
	return a.droppedAt
}

// Disclosure is what a courier learns about a pickup point. DistanceMeters is
// set only on exact disclosures: a distance to the exact point would let a
// distant courier trilaterate it.
type Disclosure struct {
	DeliveryID      kernel.UUID
	OrderID         kernel.UUID
	Location        kernel.GeoLocation
	PhotoURL        string
	DroppedAt       time.Time
	IsExactLocation bool
	DistanceMeters  *float64
}

func ExactDisclosure(i Info, distanceMeters float64) Disclosure {
	return Disclosure{
		DeliveryID:      i.deliveryID,
		OrderID:         i.orderID,
		Location:        i.location,
		PhotoURL:        i.photoURL,
		DroppedAt:       i.droppedAt,
		IsExactLocation: true,
		DistanceMeters:  &distanceMeters,
	}
}

func AnonymizedDisclosure(a Anonymized) Disclosure {
	return Disclosure{
		DeliveryID:      a.deliveryID,
		OrderID:         a.orderID,
		Location:        a.location,
		DroppedAt:       a.droppedAt,
		IsExactLocation: false,
	}
}

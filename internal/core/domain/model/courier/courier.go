package courier

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewAvailableCourier or Restore")
	ErrCourierIsNotAvailable   = errs.NewPreconditionViolationError(
		"Courier must be available to update location. Mark as available first.")
)

// Courier is the event-sourced CourierQueue aggregate.
type Courier struct {
	kernel.BaseAggregate

	location      kernel.GeoLocation
	available     bool
	lastUpdatedAt time.Time
}

// NewAvailableCourier registers a courier that becomes available at location.
func NewAvailableCourier(id kernel.UUID, location kernel.GeoLocation, at time.Time) (*Courier, error) {
	if err := errors.Join(id.Validate(), location.Validate()); err != nil {
		return nil, err
	}

	c := &Courier{BaseAggregate: kernel.NewBaseAggregate(id)}
	c.Raise(CourierMarkedAvailable{
		CourierID: id,
		Lat:       location.Lat(),
		Lon:       location.Lon(),
		At:        at.UTC(),
	}, c.apply)
	return c, nil
}

func Restore(id kernel.UUID, history []kernel.DomainEvent) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrCourierIsNotConstructed
	}

	c := &Courier{BaseAggregate: kernel.NewBaseAggregate(id)}
	c.Replay(history, c.apply)
	return c, nil
}

func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.ID().IsEqual(other.ID())
}

func (c *Courier) Validate() error {
	if c == nil || c.ID().IsZero() {
		return ErrCourierIsNotConstructed
	}
	return nil
}

func (c *Courier) Location() kernel.GeoLocation {
	return c.location
}

func (c *Courier) IsAvailable() bool {
	return c.available
}

func (c *Courier) LastUpdatedAt() time.Time {
	return c.lastUpdatedAt
}

// MarkAvailable makes the courier available at location.
func (c *Courier) MarkAvailable(location kernel.GeoLocation, at time.Time) error {
	if err := errors.Join(c.Validate(), location.Validate()); err != nil {
		return err
	}

	c.Raise(CourierMarkedAvailable{
		CourierID: c.ID(),
		Lat:       location.Lat(),
		Lon:       location.Lon(),
		At:        at.UTC(),
	}, c.apply)
	return nil
}

// MarkUnavailable takes the courier out of dispatch matching.
func (c *Courier) MarkUnavailable(at time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.available {
		return nil
	}

	c.Raise(CourierMarkedUnavailable{CourierID: c.ID(), At: at.UTC()}, c.apply)
	return nil
}

func (c *Courier) UpdateLocation(location kernel.GeoLocation, at time.Time) error {
	if err := errors.Join(c.Validate(), location.Validate()); err != nil {
		return err
	}
	if !c.available {
		return ErrCourierIsNotAvailable
	}

	c.Raise(CourierLocationUpdated{
		CourierID: c.ID(),
		Lat:       location.Lat(),
		Lon:       location.Lon(),
		At:        at.UTC(),
	}, c.apply)
	return nil
}

// DistanceKmTo returns the distance between the courier and target.
func (c *Courier) DistanceKmTo(target kernel.GeoLocation) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c.location.DistanceKm(target)
}

func (c *Courier) apply(e kernel.DomainEvent) {
	switch ev := e.(type) {
	case CourierMarkedAvailable:
		c.setLocation(ev.Lat, ev.Lon)
		c.available = true
		c.lastUpdatedAt = ev.At
	case CourierMarkedUnavailable:
		c.available = false
		c.lastUpdatedAt = ev.At
	case CourierLocationUpdated:
		c.setLocation(ev.Lat, ev.Lon)
		c.lastUpdatedAt = ev.At
	}
}

func (c *Courier) setLocation(lat, lon float64) {
	if loc, err := kernel.NewGeoLocation(lat, lon); err == nil {
		c.location = loc
	}
}

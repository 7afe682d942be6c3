// Package location implements the ChosenLocation aggregate: a delivery point a
// customer picked before browsing the catalog and checking out.
package location

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
)

const StreamType = "ChosenLocation"

const EventLocationChosen = "LocationChosen"

var ErrChosenLocationIsNotConstructed = errors.New("ChosenLocation must be created via Choose or Restore")

type LocationChosen struct {
	LocationID kernel.UUID `json:"locationId"`
	Lat        float64     `json:"lat"`
	Lon        float64     `json:"lon"`
}

func (LocationChosen) EventType() string { return EventLocationChosen }

func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{LocationChosen{}}
}

type ChosenLocation struct {
	kernel.BaseAggregate

	point kernel.GeoLocation
}

func Choose(id kernel.UUID, point kernel.GeoLocation) (*ChosenLocation, error) {
	if err := errors.Join(id.Validate(), point.Validate()); err != nil {
		return nil, err
	}

	l := &ChosenLocation{BaseAggregate: kernel.NewBaseAggregate(id)}
	l.Raise(LocationChosen{LocationID: id, Lat: point.Lat(), Lon: point.Lon()}, l.apply)
	return l, nil
}

func Restore(id kernel.UUID, history []kernel.DomainEvent) (*ChosenLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrChosenLocationIsNotConstructed
	}

	l := &ChosenLocation{BaseAggregate: kernel.NewBaseAggregate(id)}
	l.Replay(history, l.apply)
	return l, nil
}

func (l *ChosenLocation) Point() kernel.GeoLocation {
	return l.point
}

func (l *ChosenLocation) apply(e kernel.DomainEvent) {
	if ev, ok := e.(LocationChosen); ok {
		if p, err := kernel.NewGeoLocation(ev.Lat, ev.Lon); err == nil {
			l.point = p
		}
	}
}

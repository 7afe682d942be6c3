package courier

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

const StreamType = "CourierQueue"

const (
	EventCourierMarkedAvailable   = "CourierMarkedAvailable"
	EventCourierMarkedUnavailable = "CourierMarkedUnavailable"
	EventCourierLocationUpdated   = "CourierLocationUpdated"
)

type CourierMarkedAvailable struct {
	CourierID kernel.UUID `json:"courierId"`
	Lat       float64     `json:"lat"`
	Lon       float64     `json:"lon"`
	At        time.Time   `json:"at"`
}

func (CourierMarkedAvailable) EventType() string { return EventCourierMarkedAvailable }

type CourierMarkedUnavailable struct {
	CourierID kernel.UUID `json:"courierId"`
	At        time.Time   `json:"at"`
}

func (CourierMarkedUnavailable) EventType() string { return EventCourierMarkedUnavailable }

type CourierLocationUpdated struct {
	CourierID kernel.UUID `json:"courierId"`
	Lat       float64     `json:"lat"`
	Lon       float64     `json:"lon"`
	At        time.Time   `json:"at"`
}

func (CourierLocationUpdated) EventType() string { return EventCourierLocationUpdated }

func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{
		CourierMarkedAvailable{},
		CourierMarkedUnavailable{},
		CourierLocationUpdated{},
	}
}

package offer

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

const StreamType = "AvailableDeliveryOffer"

const (
	EventDeliveryOfferCreated   = "DeliveryOfferCreated"
	EventDeliveryOfferAccepted  = "DeliveryOfferAccepted"
	EventDeliveryOfferCancelled = "DeliveryOfferCancelled"
	EventDeliveryOfferRevoked   = "DeliveryOfferRevoked"
)

// DeliveryOfferCreated carries the approximate pickup point only.
type DeliveryOfferCreated struct {
	OfferID    kernel.UUID `json:"offerId"`
	DeliveryID kernel.UUID `json:"deliveryId"`
	OrderID    kernel.UUID `json:"orderId"`
	CourierID  kernel.UUID `json:"courierId"`
	ApproxLat  float64     `json:"approxLat"`
	ApproxLon  float64     `json:"approxLon"`
	DroppedAt  time.Time   `json:"droppedAt"`
	OfferedAt  time.Time   `json:"offeredAt"`
}

func (DeliveryOfferCreated) EventType() string { return EventDeliveryOfferCreated }

type DeliveryOfferAccepted struct {
	OfferID    kernel.UUID `json:"offerId"`
	DeliveryID kernel.UUID `json:"deliveryId"`
	OrderID    kernel.UUID `json:"orderId"`
	CourierID  kernel.UUID `json:"courierId"`
	AcceptedAt time.Time   `json:"acceptedAt"`
}

func (DeliveryOfferAccepted) EventType() string { return EventDeliveryOfferAccepted }

type DeliveryOfferCancelled struct {
	OfferID     kernel.UUID `json:"offerId"`
	DeliveryID  kernel.UUID `json:"deliveryId"`
	CourierID   kernel.UUID `json:"courierId"`
	Reason      string      `json:"reason"`
	CancelledAt time.Time   `json:"cancelledAt"`
}

func (DeliveryOfferCancelled) EventType() string { return EventDeliveryOfferCancelled }

// DeliveryOfferRevoked withdraws an accepted offer that lost the race for its delivery.
type DeliveryOfferRevoked struct {
	OfferID    kernel.UUID `json:"offerId"`
	DeliveryID kernel.UUID `json:"deliveryId"`
	CourierID  kernel.UUID `json:"courierId"`
	Reason     string      `json:"reason"`
	RevokedAt  time.Time   `json:"revokedAt"`
}

func (DeliveryOfferRevoked) EventType() string { return EventDeliveryOfferRevoked }

func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{
		DeliveryOfferCreated{},
		DeliveryOfferAccepted{},
		DeliveryOfferCancelled{},
		DeliveryOfferRevoked{},
	}
}

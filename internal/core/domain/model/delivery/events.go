package delivery

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

const StreamType = "PackageDelivery"

const (
	EventPackageDeliveryCreated  = "PackageDeliveryCreated"
	EventPackageDroppedByBaker   = "PackageDroppedByBaker"
	EventCourierAssigned         = "CourierAssigned"
	EventPackagePickedUp         = "PackagePickedUp"
	EventPackageDroppedByCourier = "PackageDroppedByCourier"
	EventPackageRetrieved        = "PackageRetrieved"
	EventPackageDelivered        = "PackageDelivered"
)

type PackageDeliveryCreated struct {
	DeliveryID    kernel.UUID `json:"deliveryId"`
	OrderID       kernel.UUID `json:"orderId"`
	TransactionID string      `json:"transactionId"`
	CustomerLat   float64     `json:"customerLat"`
	CustomerLon   float64     `json:"customerLon"`
}

func (PackageDeliveryCreated) EventType() string { return EventPackageDeliveryCreated }

type PackageDroppedByBaker struct {
	DeliveryID kernel.UUID `json:"deliveryId"`
	OrderID    kernel.UUID `json:"orderId"`
	DroppedAt  time.Time   `json:"droppedAt"`
	Lat        float64     `json:"lat"`
	Lon        float64     `json:"lon"`
	PhotoURL   string      `json:"photoUrl"`
}

func (PackageDroppedByBaker) EventType() string { return EventPackageDroppedByBaker }

type CourierAssigned struct {
	DeliveryID kernel.UUID  `json:"deliveryId"`
	OrderID    kernel.UUID  `json:"orderId"`
	CourierID  kernel.UUID  `json:"courierId"`
	OfferID    *kernel.UUID `json:"offerId,omitempty"`
	AssignedAt time.Time    `json:"assignedAt"`
}

func (CourierAssigned) EventType() string { return EventCourierAssigned }

type PackagePickedUp struct {
	DeliveryID kernel.UUID `json:"deliveryId"`
	OrderID    kernel.UUID `json:"orderId"`
	CourierID  kernel.UUID `json:"courierId"`
	PickedUpAt time.Time   `json:"pickedUpAt"`
}

func (PackagePickedUp) EventType() string { return EventPackagePickedUp }

type PackageDroppedByCourier struct {
	DeliveryID kernel.UUID `json:"deliveryId"`
	OrderID    kernel.UUID `json:"orderId"`
	CourierID  kernel.UUID `json:"courierId"`
	DroppedAt  time.Time   `json:"droppedAt"`
	Lat        float64     `json:"lat"`
	Lon        float64     `json:"lon"`
	PhotoURL   string      `json:"photoUrl"`
}

func (PackageDroppedByCourier) EventType() string { return EventPackageDroppedByCourier }

type PackageRetrieved struct {
	DeliveryID  kernel.UUID `json:"deliveryId"`
	OrderID     kernel.UUID `json:"orderId"`
	RetrievedAt time.Time   `json:"retrievedAt"`
}

func (PackageRetrieved) EventType() string { return EventPackageRetrieved }

type PackageDelivered struct {
	DeliveryID  kernel.UUID `json:"deliveryId"`
	OrderID     kernel.UUID `json:"orderId"`
	DeliveredAt time.Time   `json:"deliveredAt"`
}

func (PackageDelivered) EventType() string { return EventPackageDelivered }

func Events() []kernel.DomainEvent {
	return []kernel.DomainEvent{
		PackageDeliveryCreated{},
		PackageDroppedByBaker{},
		CourierAssigned{},
		PackagePickedUp{},
		PackageDroppedByCourier{},
		PackageRetrieved{},
		PackageDelivered{},
	}
}

package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrDeliveryCommandIsNotConstructed = errors.New(
		"DeliveryCommand must be created via one of the NewXxxDeliveryCommand constructors",
	)
	ErrAssignCourierCommandIsNotConstructed = errors.New(
		"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
	)
)

// CreateDeliveryCommand opens the delivery of a paid order.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	orderID       kernel.UUID
	transactionID string
	customer      kernel.GeoLocation

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	transactionID string,
	customer kernel.GeoLocation,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), orderID.Validate(), customer.Validate()); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		deliveryID:    deliveryID,
		orderID:       orderID,
		transactionID: transactionID,
		customer:      customer,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryCommand) TransactionID() string {
	return c.transactionID
}

func (c CreateDeliveryCommand) Customer() kernel.GeoLocation {
	return c.customer
}

// DeliveryCommand is a step of an existing delivery. Which fields are set depends on
// the constructor used: drops carry a location and photo, courier steps a courier.
type DeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	location   kernel.GeoLocation
	photoURL   string

	guard guard.ConstructorGuard
}

func NewDropByBakerDeliveryCommand(
	deliveryID kernel.UUID,
	location kernel.GeoLocation,
	photoURL string,
) (DeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), location.Validate()); err != nil {
		return DeliveryCommand{}, err
	}

	return DeliveryCommand{
		deliveryID: deliveryID,
		location:   location,
		photoURL:   photoURL,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func NewPickUpDeliveryCommand(deliveryID kernel.UUID, courierID kernel.UUID) (DeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return DeliveryCommand{}, err
	}

	return DeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func NewDropByCourierDeliveryCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	location kernel.GeoLocation,
	photoURL string,
) (DeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), courierID.Validate(), location.Validate()); err != nil {
		return DeliveryCommand{}, err
	}

	return DeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		location:   location,
		photoURL:   photoURL,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewCustomerDeliveryCommand addresses retrieval and confirmation, which only need the
// delivery.
func NewCustomerDeliveryCommand(deliveryID kernel.UUID) (DeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return DeliveryCommand{}, err
	}

	return DeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeliveryCommandIsNotConstructed)
}

func (c DeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c DeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c DeliveryCommand) Location() kernel.GeoLocation {
	return c.location
}

func (c DeliveryCommand) PhotoURL() string {
	return c.photoURL
}

// AssignCourierCommand hands a dropped package to the courier whose offer was accepted.
// The offer is optional for manual assignment.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	offerID    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(
	deliveryID kernel.UUID,
	courierID kernel.UUID,
	offerID *kernel.UUID,
) (AssignCourierCommand, error) {
	var offerErr error
	if offerID != nil {
		offerErr = offerID.Validate()
	}
	if err := errors.Join(deliveryID.Validate(), courierID.Validate(), offerErr); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		offerID:    offerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c AssignCourierCommand) OfferID() *kernel.UUID {
	if c.offerID == nil {
		return nil
	}
	id := *c.offerID
	return &id
}

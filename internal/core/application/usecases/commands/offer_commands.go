package commands

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrAcceptOfferCommandIsNotConstructed = errors.New(
		"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
	)
	ErrCancelOfferCommandIsNotConstructed = errors.New(
		"CancelOfferCommand must be created via NewCancelOfferCommand constructor",
	)
	ErrCancelCompetingOffersCommandIsNotConstructed = errors.New(
		"CancelCompetingOffersCommand must be created via NewCancelCompetingOffersCommand constructor",
	)
	ErrDispatchDeliveryCommandIsNotConstructed = errors.New(
		"DispatchDeliveryCommand must be created via NewDispatchDeliveryCommand constructor",
	)
)

type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	offerID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOfferCommand(offerID kernel.UUID, courierID kernel.UUID) (AcceptOfferCommand, error) {
	if err := errors.Join(offerID.Validate(), courierID.Validate()); err != nil {
		return AcceptOfferCommand{}, err
	}

	return AcceptOfferCommand{
		offerID:   offerID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c AcceptOfferCommand) CourierID() kernel.UUID {
	return c.courierID
}

type CancelOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOfferCommand(offerID kernel.UUID, reason string) (CancelOfferCommand, error) {
	var reasonErr error
	if strings.TrimSpace(reason) == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(offerID.Validate(), reasonErr); err != nil {
		return CancelOfferCommand{}, err
	}

	return CancelOfferCommand{
		offerID: offerID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOfferCommand) Validate() error {
	return c.guard.Validate(ErrCancelOfferCommandIsNotConstructed)
}

func (c CancelOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c CancelOfferCommand) Reason() string {
	return c.reason
}

// CancelCompetingOffersCommand withdraws every pending offer of a delivery except the
// accepted one.
type CancelCompetingOffersCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	acceptedOfferID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelCompetingOffersCommand(
	deliveryID kernel.UUID,
	acceptedOfferID kernel.UUID,
) (CancelCompetingOffersCommand, error) {
	if err := errors.Join(deliveryID.Validate(), acceptedOfferID.Validate()); err != nil {
		return CancelCompetingOffersCommand{}, err
	}

	return CancelCompetingOffersCommand{
		deliveryID:      deliveryID,
		acceptedOfferID: acceptedOfferID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CancelCompetingOffersCommand) Validate() error {
	return c.guard.Validate(ErrCancelCompetingOffersCommandIsNotConstructed)
}

func (c CancelCompetingOffersCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CancelCompetingOffersCommand) AcceptedOfferID() kernel.UUID {
	return c.acceptedOfferID
}

// DispatchDeliveryCommand offers a package dropped by the baker to nearby couriers.
type DispatchDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	pickup     kernel.GeoLocation
	photoURL   string
	droppedAt  time.Time

	guard guard.ConstructorGuard
}

func NewDispatchDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	pickup kernel.GeoLocation,
	photoURL string,
	droppedAt time.Time,
) (DispatchDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), orderID.Validate(), pickup.Validate()); err != nil {
		return DispatchDeliveryCommand{}, err
	}

	return DispatchDeliveryCommand{
		deliveryID: deliveryID,
		orderID:    orderID,
		pickup:     pickup,
		photoURL:   photoURL,
		droppedAt:  droppedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryCommandIsNotConstructed)
}

func (c DispatchDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c DispatchDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DispatchDeliveryCommand) Pickup() kernel.GeoLocation {
	return c.pickup
}

func (c DispatchDeliveryCommand) PhotoURL() string {
	return c.photoURL
}

func (c DispatchDeliveryCommand) DroppedAt() time.Time {
	return c.droppedAt
}

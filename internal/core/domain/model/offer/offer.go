package offer

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or Restore")

// CompetingAcceptanceReason is recorded on offers cancelled because another courier
// accepted the same delivery.
func CompetingAcceptanceReason(deliveryID kernel.UUID) string {
	return fmt.Sprintf("Another courier accepted delivery %s", deliveryID)
}

// Offer is the AvailableDeliveryOffer aggregate: one delivery proposed to one courier.
type Offer struct {
	kernel.BaseAggregate

	deliveryID   kernel.UUID
	orderID      kernel.UUID
	courierID    kernel.UUID
	approximate  kernel.GeoLocation
	status       Status
	droppedAt    time.Time
	offeredAt    time.Time
	acceptedAt   *time.Time
	cancelReason string
}

// NewOffer proposes a delivery to a courier. The pickup point is stored rounded.
func NewOffer(
	id kernel.UUID,
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	pickup kernel.GeoLocation,
	droppedAt time.Time,
	offeredAt time.Time,
) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		orderID.Validate(),
		courierID.Validate(),
		pickup.Validate(),
	); err != nil {
		return nil, err
	}

	approx := pickup.Approximate()
	o := &Offer{BaseAggregate: kernel.NewBaseAggregate(id)}
	o.Raise(DeliveryOfferCreated{
		OfferID:    id,
		DeliveryID: deliveryID,
		OrderID:    orderID,
		CourierID:  courierID,
		ApproxLat:  approx.Lat(),
		ApproxLon:  approx.Lon(),
		DroppedAt:  droppedAt.UTC(),
		OfferedAt:  offeredAt.UTC(),
	}, o.apply)
	return o, nil
}

func Restore(id kernel.UUID, history []kernel.DomainEvent) (*Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrOfferIsNotConstructed
	}

	o := &Offer{BaseAggregate: kernel.NewBaseAggregate(id)}
	o.Replay(history, o.apply)
	return o, nil
}

func (o *Offer) Validate() error {
	if o == nil || o.ID().IsZero() || o.status == Unknown {
		return ErrOfferIsNotConstructed
	}
	return nil
}

func (o *Offer) DeliveryID() kernel.UUID {
	return o.deliveryID
}

func (o *Offer) OrderID() kernel.UUID {
	return o.orderID
}

func (o *Offer) CourierID() kernel.UUID {
	return o.courierID
}

func (o *Offer) ApproximateLocation() kernel.GeoLocation {
	return o.approximate
}

func (o *Offer) Status() Status {
	return o.status
}

func (o *Offer) DroppedAt() time.Time {
	return o.droppedAt
}

func (o *Offer) OfferedAt() time.Time {
	return o.offeredAt
}

func (o *Offer) AcceptedAt() *time.Time {
	return o.acceptedAt
}

func (o *Offer) CancelReason() string {
	return o.cancelReason
}

// BelongsTo reports whether the offer was made to courierID.
func (o *Offer) BelongsTo(courierID kernel.UUID) bool {
	return o.courierID.IsEqual(courierID)
}

// Accept is the only guard against accepting one offer twice: it requires Pending.
func (o *Offer) Accept(courierID kernel.UUID, at time.Time) error {
	if err := errors.Join(o.Validate(), courierID.Validate()); err != nil {
		return err
	}
	if !o.BelongsTo(courierID) {
		return errs.NewPreconditionViolationErrorf("Offer %s was made to another courier", o.ID())
	}
	if o.status != Pending {
		return errs.NewPreconditionViolationErrorf("Offer already %s", o.status)
	}

	o.Raise(DeliveryOfferAccepted{
		OfferID:    o.ID(),
		DeliveryID: o.deliveryID,
		OrderID:    o.orderID,
		CourierID:  o.courierID,
		AcceptedAt: at.UTC(),
	}, o.apply)
	return nil
}

// Cancel withdraws a Pending offer.
func (o *Offer) Cancel(reason string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return errs.NewPreconditionViolationErrorf("Offer already %s", o.status)
	}

	o.Raise(DeliveryOfferCancelled{
		OfferID:     o.ID(),
		DeliveryID:  o.deliveryID,
		CourierID:   o.courierID,
		Reason:      reason,
		CancelledAt: at.UTC(),
	}, o.apply)
	return nil
}

// Revoke withdraws an Accepted offer whose courier lost the delivery.
func (o *Offer) Revoke(reason string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Accepted {
		return errs.NewPreconditionViolationErrorf("Offer cannot be revoked: status is %s", o.status)
	}

	o.Raise(DeliveryOfferRevoked{
		OfferID:    o.ID(),
		DeliveryID: o.deliveryID,
		CourierID:  o.courierID,
		Reason:     reason,
		RevokedAt:  at.UTC(),
	}, o.apply)
	return nil
}

func (o *Offer) apply(e kernel.DomainEvent) {
	switch ev := e.(type) {
	case DeliveryOfferCreated:
		o.deliveryID = ev.DeliveryID
		o.orderID = ev.OrderID
		o.courierID = ev.CourierID
		if loc, err := kernel.NewGeoLocation(ev.ApproxLat, ev.ApproxLon); err == nil {
			o.approximate = loc
		}
		o.droppedAt = ev.DroppedAt
		o.offeredAt = ev.OfferedAt
		o.status = Pending
	case DeliveryOfferAccepted:
		at := ev.AcceptedAt
		o.acceptedAt = &at
		o.status = Accepted
	case DeliveryOfferCancelled:
		o.cancelReason = ev.Reason
		o.status = Cancelled
	case DeliveryOfferRevoked:
		o.cancelReason = ev.Reason
		o.status = Cancelled
	}
}

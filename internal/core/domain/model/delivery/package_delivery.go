package delivery

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// DropToleranceMeters is the largest accepted distance between the courier drop
// point and the customer location. The bound is inclusive.
const DropToleranceMeters = 100.0

// distanceEpsilon absorbs floating point noise at the tolerance boundary.
const distanceEpsilon = 1e-6

var (
	ErrDeliveryIsNotConstructed = errors.New("PackageDelivery must be created via Create or Restore")
	ErrPhotoURLIsRequired       = errs.NewValueIsRequiredError("photoUrl")
)

// Drop is where and when a package was left.
type Drop struct {
	Location  kernel.GeoLocation
	PhotoURL  string
	DroppedAt time.Time
}

// PackageDelivery is the event-sourced aggregate that moves a paid order from the
// baker to the customer.
type PackageDelivery struct {
	kernel.BaseAggregate

	orderID       kernel.UUID
	transactionID string
	customer      kernel.GeoLocation
	status        Status
	bakerDrop     *Drop
	courierID     *kernel.UUID
	offerID       *kernel.UUID
	pickedUpAt    *time.Time
	courierDrop   *Drop
	retrievedAt   *time.Time
	deliveredAt   *time.Time
}

func Create(
	id kernel.UUID,
	orderID kernel.UUID,
	transactionID string,
	customer kernel.GeoLocation,
) (*PackageDelivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), customer.Validate()); err != nil {
		return nil, err
	}

	d := &PackageDelivery{BaseAggregate: kernel.NewBaseAggregate(id)}
	d.Raise(PackageDeliveryCreated{
		DeliveryID:    id,
		OrderID:       orderID,
		TransactionID: transactionID,
		CustomerLat:   customer.Lat(),
		CustomerLon:   customer.Lon(),
	}, d.apply)
	return d, nil
}

func Restore(id kernel.UUID, history []kernel.DomainEvent) (*PackageDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrDeliveryIsNotConstructed
	}

	d := &PackageDelivery{BaseAggregate: kernel.NewBaseAggregate(id)}
	d.Replay(history, d.apply)
	return d, nil
}

func (d *PackageDelivery) Validate() error {
	if d == nil || d.ID().IsZero() || d.status == Unknown {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *PackageDelivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *PackageDelivery) TransactionID() string {
	return d.transactionID
}

func (d *PackageDelivery) Customer() kernel.GeoLocation {
	return d.customer
}

func (d *PackageDelivery) Status() Status {
	return d.status
}

func (d *PackageDelivery) BakerDrop() *Drop {
	return copyDrop(d.bakerDrop)
}

func (d *PackageDelivery) CourierID() *kernel.UUID {
	return d.courierID
}

func (d *PackageDelivery) OfferID() *kernel.UUID {
	return d.offerID
}

func (d *PackageDelivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

func (d *PackageDelivery) CourierDrop() *Drop {
	return copyDrop(d.courierDrop)
}

func (d *PackageDelivery) RetrievedAt() *time.Time {
	return d.retrievedAt
}

func (d *PackageDelivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsAssignedTo reports whether courierID is the assigned courier.
func (d *PackageDelivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID != nil && d.courierID.IsEqual(courierID)
}

func (d *PackageDelivery) MarkDroppedByBaker(location kernel.GeoLocation, photoURL string, at time.Time) error {
	if err := errors.Join(d.Validate(), location.Validate(), requirePhoto(photoURL)); err != nil {
		return err
	}
	if err := d.status.require(Created, "mark dropped by baker"); err != nil {
		return err
	}

	d.Raise(PackageDroppedByBaker{
		DeliveryID: d.ID(),
		OrderID:    d.orderID,
		DroppedAt:  at.UTC(),
		Lat:        location.Lat(),
		Lon:        location.Lon(),
		PhotoURL:   photoURL,
	}, d.apply)
	return nil
}

// AssignCourier binds the courier whose offer won. Assigning the same courier
// again records nothing; assigning a different one is rejected.
func (d *PackageDelivery) AssignCourier(courierID kernel.UUID, offerID *kernel.UUID, at time.Time) error {
	if err := errors.Join(d.Validate(), courierID.Validate()); err != nil {
		return err
	}
	if d.courierID != nil {
		if d.courierID.IsEqual(courierID) {
			return nil
		}
		return errs.NewPreconditionViolationErrorf("Courier %s is already assigned to delivery %s", d.courierID, d.ID())
	}
	if err := d.status.require(DroppedByBaker, "assign courier"); err != nil {
		return err
	}

	d.Raise(CourierAssigned{
		DeliveryID: d.ID(),
		OrderID:    d.orderID,
		CourierID:  courierID,
		OfferID:    offerID,
		AssignedAt: at.UTC(),
	}, d.apply)
	return nil
}

func (d *PackageDelivery) MarkPickedUp(courierID kernel.UUID, at time.Time) error {
	if err := errors.Join(d.Validate(), courierID.Validate()); err != nil {
		return err
	}
	if err := d.status.require(DroppedByBaker, "pick up"); err != nil {
		return err
	}
	if err := d.requireAssigned(courierID); err != nil {
		return err
	}

	d.Raise(PackagePickedUp{
		DeliveryID: d.ID(),
		OrderID:    d.orderID,
		CourierID:  courierID,
		PickedUpAt: at.UTC(),
	}, d.apply)
	return nil
}

// MarkDroppedByCourier accepts a drop within DropToleranceMeters of the customer.
func (d *PackageDelivery) MarkDroppedByCourier(
	courierID kernel.UUID,
	location kernel.GeoLocation,
	photoURL string,
	at time.Time,
) error {
	if err := errors.Join(d.Validate(), courierID.Validate(), location.Validate(), requirePhoto(photoURL)); err != nil {
		return err
	}
	if err := d.status.require(InTransit, "mark dropped by courier"); err != nil {
		return err
	}
	if err := d.requireAssigned(courierID); err != nil {
		return err
	}

	distance, err := location.DistanceMeters(d.customer)
	if err != nil {
		return err
	}
	if distance-DropToleranceMeters > distanceEpsilon {
		return errs.NewPreconditionViolationErrorf(
			"Drop location is %.1f m from the customer location, at most %.0f m allowed", distance, DropToleranceMeters)
	}

	d.Raise(PackageDroppedByCourier{
		DeliveryID: d.ID(),
		OrderID:    d.orderID,
		CourierID:  courierID,
		DroppedAt:  at.UTC(),
		Lat:        location.Lat(),
		Lon:        location.Lon(),
		PhotoURL:   photoURL,
	}, d.apply)
	return nil
}

// Retrieve records that the customer collected the package. The status stays
// DroppedByCourier until the delivery is confirmed.
func (d *PackageDelivery) Retrieve(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.status.require(DroppedByCourier, "retrieve package"); err != nil {
		return err
	}
	if d.retrievedAt != nil {
		return errs.NewPreconditionViolationError("Package was already retrieved")
	}

	d.Raise(PackageRetrieved{DeliveryID: d.ID(), OrderID: d.orderID, RetrievedAt: at.UTC()}, d.apply)
	return nil
}

// ConfirmDelivery closes a delivery whose package was retrieved.
func (d *PackageDelivery) ConfirmDelivery(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.status.require(DroppedByCourier, "confirm delivery"); err != nil {
		return err
	}
	if d.retrievedAt == nil {
		return errs.NewPreconditionViolationError("Package must be retrieved before the delivery is confirmed")
	}

	d.Raise(PackageDelivered{DeliveryID: d.ID(), OrderID: d.orderID, DeliveredAt: at.UTC()}, d.apply)
	return nil
}

func (d *PackageDelivery) requireAssigned(courierID kernel.UUID) error {
	if d.courierID == nil {
		return errs.NewPreconditionViolationError("No courier is assigned to the delivery")
	}
	if !d.courierID.IsEqual(courierID) {
		return errs.NewPreconditionViolationErrorf("Courier %s is not assigned to the delivery", courierID)
	}
	return nil
}

func (d *PackageDelivery) apply(e kernel.DomainEvent) {
	switch ev := e.(type) {
	case PackageDeliveryCreated:
		d.orderID = ev.OrderID
		d.transactionID = ev.TransactionID
		if loc, err := kernel.NewGeoLocation(ev.CustomerLat, ev.CustomerLon); err == nil {
			d.customer = loc
		}
		d.status = Created
	case PackageDroppedByBaker:
		d.bakerDrop = newDrop(ev.Lat, ev.Lon, ev.PhotoURL, ev.DroppedAt)
		d.status = DroppedByBaker
	case CourierAssigned:
		courierID := ev.CourierID
		d.courierID = &courierID
		d.offerID = ev.OfferID
	case PackagePickedUp:
		at := ev.PickedUpAt
		d.pickedUpAt = &at
		d.status = InTransit
	case PackageDroppedByCourier:
		d.courierDrop = newDrop(ev.Lat, ev.Lon, ev.PhotoURL, ev.DroppedAt)
		d.status = DroppedByCourier
	case PackageRetrieved:
		at := ev.RetrievedAt
		d.retrievedAt = &at
	case PackageDelivered:
		at := ev.DeliveredAt
		d.deliveredAt = &at
		d.status = Delivered
	}
}

func newDrop(lat, lon float64, photoURL string, at time.Time) *Drop {
	loc, err := kernel.NewGeoLocation(lat, lon)
	if err != nil {
		return nil
	}
	return &Drop{Location: loc, PhotoURL: photoURL, DroppedAt: at}
}

func copyDrop(d *Drop) *Drop {
	if d == nil {
		return nil
	}
	out := *d
	return &out
}

func requirePhoto(photoURL string) error {
	if strings.TrimSpace(photoURL) == "" {
		return ErrPhotoURLIsRequired
	}
	return nil
}

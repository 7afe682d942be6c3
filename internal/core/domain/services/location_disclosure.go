package services

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/pkg/errs"
)

// DisclosureThresholdMeters is the distance up to which a courier sees the exact
// pickup point and the baker's photo.
const DisclosureThresholdMeters = 500.0

// LocationDisclosure gates the pickup point of a delivery behind courier proximity.
type LocationDisclosure struct {
	thresholdMeters float64
}

func NewLocationDisclosure() LocationDisclosure {
	return LocationDisclosure{thresholdMeters: DisclosureThresholdMeters}
}

// Authorize checks that the courier owns the offer and the offer was accepted.
func (s LocationDisclosure) Authorize(o *offer.Offer, courierID kernel.UUID) error {
	if err := errors.Join(o.Validate(), courierID.Validate()); err != nil {
		return err
	}
	if !o.BelongsTo(courierID) {
		return errs.NewAccessDeniedError("package location", "offer belongs to another courier")
	}
	if o.Status() != offer.Accepted {
		return errs.NewAccessDeniedError("package location", "offer is "+o.Status().String())
	}
	return nil
}

// Disclose returns the exact location within the threshold and the anonymized one
// otherwise. anonymized is used as is when present, else it is derived from exact.
func (s LocationDisclosure) Disclose(
	o *offer.Offer,
	courierID kernel.UUID,
	courierAt kernel.GeoLocation,
	exact packagelocation.Info,
	anonymized *packagelocation.Anonymized,
) (packagelocation.Disclosure, error) {
	if err := s.Authorize(o, courierID); err != nil {
		return packagelocation.Disclosure{}, err
	}
	if err := errors.Join(courierAt.Validate(), exact.Validate()); err != nil {
		return packagelocation.Disclosure{}, err
	}

	distance, err := courierAt.DistanceMeters(exact.Location())
	if err != nil {
		return packagelocation.Disclosure{}, err
	}

	if distance <= s.threshold() {
		return packagelocation.ExactDisclosure(exact, distance), nil
	}

	anon := exact.Anonymize()
	if anonymized != nil {
		anon = *anonymized
	}
	return packagelocation.AnonymizedDisclosure(anon), nil
}

func (s LocationDisclosure) threshold() float64 {
	if s.thresholdMeters <= 0 {
		return DisclosureThresholdMeters
	}
	return s.thresholdMeters
}

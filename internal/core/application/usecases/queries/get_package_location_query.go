package queries

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/packagelocation"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetPackageLocationQueryIsNotConstructed = errors.New(
	"GetPackageLocationQuery must be created via NewGetPackageLocationQuery constructor",
)

// GetPackageLocationQuery asks where to pick up the package of an accepted offer,
// as seen by a courier standing at courierAt.
type GetPackageLocationQuery struct { //nolint:recvcheck //using for validation
	offerID   kernel.UUID
	courierID kernel.UUID
	courierAt kernel.GeoLocation

	guard guard.ConstructorGuard
}

func NewGetPackageLocationQuery(
	offerID kernel.UUID,
	courierID kernel.UUID,
	courierAt kernel.GeoLocation,
) (GetPackageLocationQuery, error) {
	if err := errors.Join(offerID.Validate(), courierID.Validate(), courierAt.Validate()); err != nil {
		return GetPackageLocationQuery{}, err
	}
	return GetPackageLocationQuery{
		offerID:   offerID,
		courierID: courierID,
		courierAt: courierAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackageLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageLocationQueryIsNotConstructed)
}

// PackageLocationResponse is empty with Found false when the offer or the pickup
// record does not exist.
type PackageLocationResponse struct {
	Found bool
	packagelocation.Disclosure
}

// GetPackageLocationQueryHandler reads through the offer and package location
// repositories since the access rule lives in the domain.
type GetPackageLocationQueryHandler struct {
	offers     ports.OfferRepository
	locations  ports.PackageLocationRepository
	disclosure services.LocationDisclosure
}

func NewGetPackageLocationQueryHandler(
	offers ports.OfferRepository,
	locations ports.PackageLocationRepository,
) GetPackageLocationQueryHandler {
	return GetPackageLocationQueryHandler{
		offers:     offers,
		locations:  locations,
		disclosure: services.NewLocationDisclosure(),
	}
}

// Handle returns errs.ErrAccessDenied when the offer belongs to another courier or
// is not accepted.
func (h GetPackageLocationQueryHandler) Handle(
	ctx context.Context,
	query GetPackageLocationQuery,
) (PackageLocationResponse, error) {
	if err := query.Validate(); err != nil {
		return PackageLocationResponse{}, err
	}

	o, err := h.offers.Get(ctx, query.offerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PackageLocationResponse{}, nil
	}
	if err != nil {
		return PackageLocationResponse{}, err
	}
	if err = h.disclosure.Authorize(o, query.courierID); err != nil {
		return PackageLocationResponse{}, err
	}

	exact, err := h.locations.GetExact(ctx, o.DeliveryID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PackageLocationResponse{}, nil
	}
	if err != nil {
		return PackageLocationResponse{}, err
	}

	var anonymized *packagelocation.Anonymized
	anon, err := h.locations.GetAnonymized(ctx, o.DeliveryID())
	switch {
	case err == nil:
		anonymized = &anon
	case !errors.Is(err, errs.ErrObjectNotFound):
		return PackageLocationResponse{}, err
	}

	disclosure, err := h.disclosure.Disclose(o, query.courierID, query.courierAt, exact, anonymized)
	if err != nil {
		return PackageLocationResponse{}, err
	}
	return PackageLocationResponse{Found: true, Disclosure: disclosure}, nil
}

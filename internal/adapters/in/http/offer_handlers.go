package http

import (
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/offer"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOffers handles GET /api/v1/offers - couriers poll it for their pending offers.
func (s *Server) ListOffers(ctx echo.Context, params servers.ListOffersParams) error {
	var courierID, deliveryID *kernel.UUID
	if params.CourierId != nil {
		id, err := toKernelUUID(*params.CourierId)
		if err != nil {
			return badRequest(ctx, "Invalid courier id", err)
		}
		courierID = &id
	}
	if params.DeliveryId != nil {
		id, err := toKernelUUID(*params.DeliveryId)
		if err != nil {
			return badRequest(ctx, "Invalid delivery id", err)
		}
		deliveryID = &id
	}
	var status *offer.Status
	if params.Status != nil {
		parsed, err := offer.ParseStatus(string(*params.Status))
		if err != nil {
			return badRequest(ctx, "Invalid offer status", err)
		}
		status = &parsed
	}

	query, err := queries.NewListOffersQuery(courierID, deliveryID, status)
	if err != nil {
		return badRequest(ctx, "Invalid offer filter", err)
	}
	offers, err := s.listOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve offers", err)
	}

	response := make([]servers.Offer, len(offers))
	for i, o := range offers {
		response[i] = servers.Offer{
			Id:                  o.ID.Bytes(),
			DeliveryId:          o.DeliveryID.Bytes(),
			OrderId:             o.OrderID.Bytes(),
			CourierId:           o.CourierID.Bytes(),
			ApproximateLocation: toLocation(o.ApproximateLocation),
			Status:              servers.OfferStatus(o.Status),
			DroppedAt:           o.DroppedAt,
			OfferedAt:           o.OfferedAt,
			AcceptedAt:          o.AcceptedAt,
			CancelReason:        optionalString(o.CancelReason),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptOffer handles POST /api/v1/offers/{offerId}/accept.
func (s *Server) AcceptOffer(ctx echo.Context, offerID servers.OfferId) error {
	var body servers.AcceptOfferJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(offerID)
	if err != nil {
		return badRequest(ctx, "Invalid offer id", err)
	}
	courierID, err := toKernelUUID(body.CourierId)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}
	cmd, err := commands.NewAcceptOfferCommand(id, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid acceptance", err)
	}

	if err = s.offerHandler.HandleAccept(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to accept offer", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOffer handles POST /api/v1/offers/{offerId}/cancel.
func (s *Server) CancelOffer(ctx echo.Context, offerID servers.OfferId) error {
	var body servers.CancelOfferJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(offerID)
	if err != nil {
		return badRequest(ctx, "Invalid offer id", err)
	}
	cmd, err := commands.NewCancelOfferCommand(id, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation", err)
	}

	if err = s.offerHandler.HandleCancel(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to cancel offer", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPackageLocation handles GET /api/v1/offers/{offerId}/package-location. The exact
// point and photo are only disclosed to the accepted courier once within reach.
func (s *Server) GetPackageLocation(ctx echo.Context, offerID servers.OfferId, params servers.GetPackageLocationParams) error {
	id, err := toKernelUUID(offerID)
	if err != nil {
		return badRequest(ctx, "Invalid offer id", err)
	}
	courierID, err := toKernelUUID(params.CourierId)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}
	courierAt, err := kernel.NewGeoLocation(params.Lat, params.Lon)
	if err != nil {
		return badRequest(ctx, "Invalid courier location", err)
	}
	query, err := queries.NewGetPackageLocationQuery(id, courierID, courierAt)
	if err != nil {
		return badRequest(ctx, "Invalid package location request", err)
	}

	result, err := s.getPackageLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve package location", err)
	}
	if !result.Found {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Package location not found",
		})
	}

	return ctx.JSON(http.StatusOK, servers.PackageLocation{
		DeliveryId:      result.DeliveryID.Bytes(),
		OrderId:         result.OrderID.Bytes(),
		Location:        toLocation(result.Location),
		PhotoUrl:        optionalString(result.PhotoURL),
		DroppedAt:       result.DroppedAt,
		IsExactLocation: result.IsExactLocation,
		DistanceMeters:  result.DistanceMeters,
	})
}

package http

import (
	"context"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	id, err := toKernelUUID(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}

	d, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve delivery", err)
	}
	return ctx.JSON(http.StatusOK, toDelivery(d))
}

// DropByBaker handles POST /api/v1/deliveries/{deliveryId}/baker-drop - the baker leaves
// the package at a pickup point, which starts courier dispatch.
func (s *Server) DropByBaker(ctx echo.Context, deliveryID servers.DeliveryId) error {
	var body servers.DropByBakerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}
	location, err := fromLocation(body.Location)
	if err != nil {
		return badRequest(ctx, "Invalid location", err)
	}
	cmd, err := commands.NewDropByBakerDeliveryCommand(id, location, body.PhotoUrl)
	if err != nil {
		return badRequest(ctx, "Invalid drop", err)
	}

	if err = s.deliveryHandler.HandleDropByBaker(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to drop package", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PickUpPackage handles POST /api/v1/deliveries/{deliveryId}/pickup.
func (s *Server) PickUpPackage(ctx echo.Context, deliveryID servers.DeliveryId) error {
	var body servers.PickUpPackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}
	courierID, err := toKernelUUID(body.CourierId)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}
	cmd, err := commands.NewPickUpDeliveryCommand(id, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid pickup", err)
	}

	if err = s.deliveryHandler.HandlePickUp(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to pick up package", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DropByCourier handles POST /api/v1/deliveries/{deliveryId}/courier-drop.
func (s *Server) DropByCourier(ctx echo.Context, deliveryID servers.DeliveryId) error {
	var body servers.DropByCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}
	courierID, err := toKernelUUID(body.CourierId)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}
	location, err := fromLocation(body.Location)
	if err != nil {
		return badRequest(ctx, "Invalid location", err)
	}
	cmd, err := commands.NewDropByCourierDeliveryCommand(id, courierID, location, body.PhotoUrl)
	if err != nil {
		return badRequest(ctx, "Invalid drop", err)
	}

	if err = s.deliveryHandler.HandleDropByCourier(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to drop package", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RetrievePackage handles POST /api/v1/deliveries/{deliveryId}/retrieve.
func (s *Server) RetrievePackage(ctx echo.Context, deliveryID servers.DeliveryId) error {
	return s.customerStep(ctx, deliveryID, "Failed to retrieve package", s.deliveryHandler.HandleRetrieve)
}

// ConfirmDelivery handles POST /api/v1/deliveries/{deliveryId}/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	return s.customerStep(ctx, deliveryID, "Failed to confirm delivery", s.deliveryHandler.HandleConfirm)
}

func (s *Server) customerStep(
	ctx echo.Context,
	deliveryID servers.DeliveryId,
	message string,
	handle func(ctx context.Context, cmd commands.DeliveryCommand) error,
) error {
	id, err := toKernelUUID(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}
	cmd, err := commands.NewCustomerDeliveryCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid delivery id", err)
	}

	if err = handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, message, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toDelivery(d queries.DeliveryResponse) servers.Delivery {
	return servers.Delivery{
		Id:            d.ID.Bytes(),
		OrderId:       d.OrderID.Bytes(),
		TransactionId: d.TransactionID,
		Status:        d.Status,
		Customer:      toLocation(d.Customer),
		BakerDrop:     toDrop(d.BakerDrop),
		CourierId:     optionalUUID(d.CourierID),
		OfferId:       optionalUUID(d.OfferID),
		PickedUpAt:    d.PickedUpAt,
		CourierDrop:   toDrop(d.CourierDrop),
		RetrievedAt:   d.RetrievedAt,
		DeliveredAt:   d.DeliveredAt,
	}
}

func toDrop(d *queries.DropResponse) *servers.Drop {
	if d == nil {
		return nil
	}
	return &servers.Drop{
		Location:  toLocation(d.Location),
		PhotoUrl:  d.PhotoURL,
		DroppedAt: d.DroppedAt,
	}
}

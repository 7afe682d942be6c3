package http

import (
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/services"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListAvailableCouriers handles GET /api/v1/couriers - with lat and lon it narrows the
// list to couriers within radiusKm, the dispatch radius by default.
func (s *Server) ListAvailableCouriers(ctx echo.Context, params servers.ListAvailableCouriersParams) error {
	query := queries.NewListAvailableCouriersQuery()
	if params.Lat != nil || params.Lon != nil {
		if params.Lat == nil || params.Lon == nil {
			return badRequest(ctx, "lat and lon must be given together", nil)
		}
		near, err := kernel.NewGeoLocation(*params.Lat, *params.Lon)
		if err != nil {
			return badRequest(ctx, "Invalid location", err)
		}
		radiusKm := services.DispatchRadiusKm
		if params.RadiusKm != nil {
			radiusKm = *params.RadiusKm
		}
		if query, err = queries.NewListAvailableCouriersNearQuery(near, radiusKm); err != nil {
			return badRequest(ctx, "Invalid search area", err)
		}
	}

	couriers, err := s.listCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve couriers", err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:            c.ID.Bytes(),
			Location:      toLocation(c.Location),
			LastUpdatedAt: c.LastUpdatedAt,
			DistanceKm:    c.DistanceKm,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkCourierAvailable handles PUT /api/v1/couriers/{courierId}/availability.
func (s *Server) MarkCourierAvailable(ctx echo.Context, courierID servers.CourierId) error {
	cmd, err := bindCourierLocation(ctx, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier location", err)
	}

	if err = s.courierHandler.HandleMarkAvailable(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to mark courier available", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkCourierUnavailable handles DELETE /api/v1/couriers/{courierId}/availability.
func (s *Server) MarkCourierUnavailable(ctx echo.Context, courierID servers.CourierId) error {
	id, err := toKernelUUID(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}
	cmd, err := commands.NewCourierCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}

	if err = s.courierHandler.HandleMarkUnavailable(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to mark courier unavailable", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCourierLocation handles PUT /api/v1/couriers/{courierId}/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context, courierID servers.CourierId) error {
	cmd, err := bindCourierLocation(ctx, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier location", err)
	}

	if err = s.courierHandler.HandleUpdateLocation(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to update courier location", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func bindCourierLocation(ctx echo.Context, courierID servers.CourierId) (commands.CourierCommand, error) {
	var body servers.Location
	if err := ctx.Bind(&body); err != nil {
		return commands.CourierCommand{}, err
	}

	id, err := toKernelUUID(courierID)
	if err != nil {
		return commands.CourierCommand{}, err
	}
	location, err := fromLocation(body)
	if err != nil {
		return commands.CourierCommand{}, err
	}
	return commands.NewCourierLocationCommand(id, location)
}

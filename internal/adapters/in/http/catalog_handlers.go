package http

import (
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListBakedGoods handles GET /api/v1/baked-goods - lists the catalog, nearest first
// when a chosen location is given.
func (s *Server) ListBakedGoods(ctx echo.Context, params servers.ListBakedGoodsParams) error {
	query := queries.NewListBakedGoodsQuery()
	if params.LocationId != nil {
		locationID, err := toKernelUUID(*params.LocationId)
		if err != nil {
			return badRequest(ctx, "Invalid location id", err)
		}
		if query, err = queries.NewListVisibleBakedGoodsQuery(locationID); err != nil {
			return badRequest(ctx, "Invalid location id", err)
		}
	}

	goods, err := s.listBakedGoodsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve baked goods", err)
	}

	response := make([]servers.BakedGood, len(goods))
	for i, good := range goods {
		response[i] = toBakedGood(good)
	}
	return ctx.JSON(http.StatusOK, response)
}

// PublishBakedGood handles POST /api/v1/baked-goods - lists a new baked good.
func (s *Server) PublishBakedGood(ctx echo.Context) error {
	var body servers.PublishBakedGoodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	location, err := fromLocation(body.Location)
	if err != nil {
		return badRequest(ctx, "Invalid location", err)
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	id := s.newID()
	cmd, err := commands.NewPublishBakedGoodCommand(
		id, body.Name, description, kernel.Money(body.Price), body.Stock, location)
	if err != nil {
		return badRequest(ctx, "Invalid baked good data", err)
	}

	if err = s.publishBakedGoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to publish baked good", err)
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// GetBakedGood handles GET /api/v1/baked-goods/{bakedGoodsId}.
func (s *Server) GetBakedGood(ctx echo.Context, bakedGoodsID servers.BakedGoodsId) error {
	id, err := toKernelUUID(bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid baked goods id", err)
	}
	query, err := queries.NewGetBakedGoodQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid baked goods id", err)
	}

	details, err := s.getBakedGoodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve baked good", err)
	}

	reviews := make([]servers.Review, len(details.Reviews))
	for i, r := range details.Reviews {
		reviews[i] = servers.Review{
			Id:       r.ID.Bytes(),
			AuthorId: r.AuthorID.Bytes(),
			Rating:   r.Rating,
			Content:  r.Content,
		}
	}
	return ctx.JSON(http.StatusOK, servers.BakedGoodDetails{
		BakedGood: toBakedGood(details.BakedGoodResponse),
		Reviews:   reviews,
	})
}

// UpdateBakedGoodPrice handles PUT /api/v1/baked-goods/{bakedGoodsId}/price.
func (s *Server) UpdateBakedGoodPrice(ctx echo.Context, bakedGoodsID servers.BakedGoodsId) error {
	var body servers.UpdateBakedGoodPriceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid baked goods id", err)
	}
	cmd, err := commands.NewUpdatePriceCommand(id, kernel.Money(body.Price))
	if err != nil {
		return badRequest(ctx, "Invalid price", err)
	}

	if err = s.changeBakedGoodHandler.HandleUpdatePrice(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to update price", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RestockBakedGood handles POST /api/v1/baked-goods/{bakedGoodsId}/restock.
func (s *Server) RestockBakedGood(ctx echo.Context, bakedGoodsID servers.BakedGoodsId) error {
	var body servers.RestockBakedGoodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid baked goods id", err)
	}
	cmd, err := commands.NewRestockBakedGoodCommand(id, body.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid restock amount", err)
	}

	if err = s.changeBakedGoodHandler.HandleRestock(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to restock baked good", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddReview handles POST /api/v1/baked-goods/{bakedGoodsId}/reviews.
func (s *Server) AddReview(ctx echo.Context, bakedGoodsID servers.BakedGoodsId) error {
	var body servers.AddReviewJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid baked goods id", err)
	}
	authorID, err := toKernelUUID(body.AuthorId)
	if err != nil {
		return badRequest(ctx, "Invalid author id", err)
	}
	content := ""
	if body.Content != nil {
		content = *body.Content
	}

	reviewID := s.newID()
	cmd, err := commands.NewAddReviewCommand(id, reviewID, authorID, body.Rating, content)
	if err != nil {
		return badRequest(ctx, "Invalid review", err)
	}

	if err = s.changeBakedGoodHandler.HandleAddReview(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to add review", err)
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: reviewID.Bytes()})
}

// ChooseLocation handles PUT /api/v1/locations/{locationId}.
func (s *Server) ChooseLocation(ctx echo.Context, locationID servers.LocationId) error {
	var body servers.ChooseLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(locationID)
	if err != nil {
		return badRequest(ctx, "Invalid location id", err)
	}
	point, err := fromLocation(body)
	if err != nil {
		return badRequest(ctx, "Invalid location", err)
	}
	cmd, err := commands.NewChooseLocationCommand(id, point)
	if err != nil {
		return badRequest(ctx, "Invalid location", err)
	}

	if err = s.chooseLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to choose location", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toBakedGood(g queries.BakedGoodResponse) servers.BakedGood {
	return servers.BakedGood{
		Id:            g.ID.Bytes(),
		Name:          g.Name,
		Description:   g.Description,
		Price:         g.Price.Cents(),
		Stock:         g.Stock,
		Location:      toLocation(g.Location),
		AverageRating: g.AverageRating,
		ReviewCount:   g.ReviewCount,
		DistanceKm:    g.DistanceKm,
	}
}

package http

import (
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/carts/{cartId}.
func (s *Server) GetCart(ctx echo.Context, cartID servers.CartId) error {
	id, err := toKernelUUID(cartID)
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}
	query, err := queries.NewGetCartQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve cart", err)
	}

	items := make([]servers.CartItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = servers.CartItem{
			BakedGoodsId: item.BakedGoodsID.Bytes(),
			Quantity:     item.Quantity,
		}
	}
	return ctx.JSON(http.StatusOK, servers.Cart{Id: cart.ID.Bytes(), Items: items})
}

// AddCartItem handles POST /api/v1/carts/{cartId}/items.
func (s *Server) AddCartItem(ctx echo.Context, cartID servers.CartId) error {
	var body servers.AddCartItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(cartID)
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}
	goodsID, err := toKernelUUID(body.BakedGoodsId)
	if err != nil {
		return badRequest(ctx, "Invalid baked goods id", err)
	}
	cmd, err := commands.NewAddCartItemCommand(id, goodsID, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart item", err)
	}

	if err = s.cartHandler.HandleAdd(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to add cart item", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetCartItemQuantity handles PUT /api/v1/carts/{cartId}/items/{bakedGoodsId}.
func (s *Server) SetCartItemQuantity(ctx echo.Context, cartID servers.CartId, bakedGoodsID servers.BakedGoodsId) error {
	var body servers.SetCartItemQuantityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, goodsID, err := cartLine(cartID, bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid cart line", err)
	}
	cmd, err := commands.NewSetCartItemQuantityCommand(id, goodsID, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity", err)
	}

	if err = s.cartHandler.HandleSetQuantity(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to set quantity", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdjustCartItemQuantity handles PATCH /api/v1/carts/{cartId}/items/{bakedGoodsId}.
func (s *Server) AdjustCartItemQuantity(ctx echo.Context, cartID servers.CartId, bakedGoodsID servers.BakedGoodsId) error {
	var body servers.AdjustCartItemQuantityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, goodsID, err := cartLine(cartID, bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid cart line", err)
	}
	cmd, err := commands.NewAdjustCartItemQuantityCommand(id, goodsID, body.Delta)
	if err != nil {
		return badRequest(ctx, "Invalid quantity change", err)
	}

	if err = s.cartHandler.HandleAdjustQuantity(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to change quantity", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/carts/{cartId}/items/{bakedGoodsId}.
func (s *Server) RemoveCartItem(ctx echo.Context, cartID servers.CartId, bakedGoodsID servers.BakedGoodsId) error {
	id, goodsID, err := cartLine(cartID, bakedGoodsID)
	if err != nil {
		return badRequest(ctx, "Invalid cart line", err)
	}
	cmd, err := commands.NewRemoveCartItemCommand(id, goodsID)
	if err != nil {
		return badRequest(ctx, "Invalid cart line", err)
	}

	if err = s.cartHandler.HandleRemove(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to remove cart item", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/carts/{cartId}/checkout - creates an order from the
// cart at the chosen location.
func (s *Server) Checkout(ctx echo.Context, cartID servers.CartId) error {
	var body servers.CheckoutJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(cartID)
	if err != nil {
		return badRequest(ctx, "Invalid cart id", err)
	}
	locationID, err := toKernelUUID(body.LocationId)
	if err != nil {
		return badRequest(ctx, "Invalid location id", err)
	}

	orderID := s.newID()
	cmd, err := commands.NewCheckoutCommand(id, orderID, locationID)
	if err != nil {
		return badRequest(ctx, "Invalid checkout", err)
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to check out", err)
	}
	return ctx.JSON(http.StatusCreated, servers.CheckoutResult{OrderId: orderID.Bytes()})
}

func cartLine(cartID servers.CartId, bakedGoodsID servers.BakedGoodsId) (kernel.UUID, kernel.UUID, error) {
	id, err := toKernelUUID(cartID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	goodsID, err := toKernelUUID(bakedGoodsID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return id, goodsID, nil
}

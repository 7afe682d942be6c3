// Package servers holds the HTTP types, the ServerInterface and the echo route
// registration of the API described in api/openapi/openapi.yaml. It is written
// in oapi-codegen's layout and kept in sync with the document by hand;
// contract_test.go fails when a documented operation has no route.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /baked-goods)
	ListBakedGoods(ctx echo.Context, params ListBakedGoodsParams) error

	// (POST /baked-goods)
	PublishBakedGood(ctx echo.Context) error

	// (GET /baked-goods/{bakedGoodsId})
	GetBakedGood(ctx echo.Context, bakedGoodsId BakedGoodsId) error

	// (PUT /baked-goods/{bakedGoodsId}/price)
	UpdateBakedGoodPrice(ctx echo.Context, bakedGoodsId BakedGoodsId) error

	// (POST /baked-goods/{bakedGoodsId}/restock)
	RestockBakedGood(ctx echo.Context, bakedGoodsId BakedGoodsId) error

	// (POST /baked-goods/{bakedGoodsId}/reviews)
	AddReview(ctx echo.Context, bakedGoodsId BakedGoodsId) error

	// (GET /carts/{cartId})
	GetCart(ctx echo.Context, cartId CartId) error

	// (POST /carts/{cartId}/checkout)
	Checkout(ctx echo.Context, cartId CartId) error

	// (POST /carts/{cartId}/items)
	AddCartItem(ctx echo.Context, cartId CartId) error

	// (DELETE /carts/{cartId}/items/{bakedGoodsId})
	RemoveCartItem(ctx echo.Context, cartId CartId, bakedGoodsId BakedGoodsId) error

	// (PATCH /carts/{cartId}/items/{bakedGoodsId})
	AdjustCartItemQuantity(ctx echo.Context, cartId CartId, bakedGoodsId BakedGoodsId) error

	// (PUT /carts/{cartId}/items/{bakedGoodsId})
	SetCartItemQuantity(ctx echo.Context, cartId CartId, bakedGoodsId BakedGoodsId) error

	// (GET /couriers/available)
	ListAvailableCouriers(ctx echo.Context, params ListAvailableCouriersParams) error

	// (DELETE /couriers/{courierId}/availability)
	MarkCourierUnavailable(ctx echo.Context, courierId CourierId) error

	// (PUT /couriers/{courierId}/availability)
	MarkCourierAvailable(ctx echo.Context, courierId CourierId) error

	// (PUT /couriers/{courierId}/location)
	UpdateCourierLocation(ctx echo.Context, courierId CourierId) error

	// (GET /deliveries/{deliveryId})
	GetDelivery(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /deliveries/{deliveryId}/baker-drop)
	DropByBaker(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /deliveries/{deliveryId}/confirm)
	ConfirmDelivery(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /deliveries/{deliveryId}/courier-drop)
	DropByCourier(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /deliveries/{deliveryId}/pickup)
	PickUpPackage(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /deliveries/{deliveryId}/retrieve)
	RetrievePackage(ctx echo.Context, deliveryId DeliveryId) error

	// (PUT /locations/{locationId})
	ChooseLocation(ctx echo.Context, locationId LocationId) error

	// (GET /offers)
	ListOffers(ctx echo.Context, params ListOffersParams) error

	// (POST /offers/{offerId}/accept)
	AcceptOffer(ctx echo.Context, offerId OfferId) error

	// (POST /offers/{offerId}/cancel)
	CancelOffer(ctx echo.Context, offerId OfferId) error

	// (GET /offers/{offerId}/package-location)
	GetPackageLocation(ctx echo.Context, offerId OfferId, params GetPackageLocationParams) error

	// (GET /orders)
	ListOrders(ctx echo.Context) error

	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// (GET /orders/{orderId}/delivery)
	GetOrderDelivery(ctx echo.Context, orderId OrderId) error

	// (GET /orders/{orderId}/payment)
	GetPayment(ctx echo.Context, orderId OrderId) error

	// (POST /orders/{orderId}/payment)
	Pay(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListBakedGoods converts echo context to params.
func (w *ServerInterfaceWrapper) ListBakedGoods(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListBakedGoodsParams
	// ------------- Optional query parameter "locationId" -------------

	err = runtime.BindQueryParameter("form", true, false, "locationId", ctx.QueryParams(), &params.LocationId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter locationId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListBakedGoods(ctx, params)
	return err
}

// PublishBakedGood converts echo context to params.
func (w *ServerInterfaceWrapper) PublishBakedGood(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PublishBakedGood(ctx)
	return err
}

// GetBakedGood converts echo context to params.
func (w *ServerInterfaceWrapper) GetBakedGood(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetBakedGood(ctx, bakedGoodsId)
	return err
}

// UpdateBakedGoodPrice converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBakedGoodPrice(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateBakedGoodPrice(ctx, bakedGoodsId)
	return err
}

// RestockBakedGood converts echo context to params.
func (w *ServerInterfaceWrapper) RestockBakedGood(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RestockBakedGood(ctx, bakedGoodsId)
	return err
}

// AddReview converts echo context to params.
func (w *ServerInterfaceWrapper) AddReview(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddReview(ctx, bakedGoodsId)
	return err
}

// GetCart converts echo context to params.
func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cartId" -------------
	var cartId CartId

	err = runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCart(ctx, cartId)
	return err
}

// Checkout converts echo context to params.
func (w *ServerInterfaceWrapper) Checkout(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cartId" -------------
	var cartId CartId

	err = runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Checkout(ctx, cartId)
	return err
}

// AddCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cartId" -------------
	var cartId CartId

	err = runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddCartItem(ctx, cartId)
	return err
}

// RemoveCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cartId" -------------
	var cartId CartId

	err = runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}

	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveCartItem(ctx, cartId, bakedGoodsId)
	return err
}

// AdjustCartItemQuantity converts echo context to params.
func (w *ServerInterfaceWrapper) AdjustCartItemQuantity(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cartId" -------------
	var cartId CartId

	err = runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}

	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdjustCartItemQuantity(ctx, cartId, bakedGoodsId)
	return err
}

// SetCartItemQuantity converts echo context to params.
func (w *ServerInterfaceWrapper) SetCartItemQuantity(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cartId" -------------
	var cartId CartId

	err = runtime.BindStyledParameterWithOptions("simple", "cartId", ctx.Param("cartId"), &cartId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cartId: %s", err))
	}

	// ------------- Path parameter "bakedGoodsId" -------------
	var bakedGoodsId BakedGoodsId

	err = runtime.BindStyledParameterWithOptions("simple", "bakedGoodsId", ctx.Param("bakedGoodsId"), &bakedGoodsId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bakedGoodsId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetCartItemQuantity(ctx, cartId, bakedGoodsId)
	return err
}

// ListAvailableCouriers converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableCouriers(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListAvailableCouriersParams
	// ------------- Optional query parameter "lat" -------------

	err = runtime.BindQueryParameter("form", true, false, "lat", ctx.QueryParams(), &params.Lat)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat: %s", err))
	}

	// ------------- Optional query parameter "lon" -------------

	err = runtime.BindQueryParameter("form", true, false, "lon", ctx.QueryParams(), &params.Lon)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lon: %s", err))
	}

	// ------------- Optional query parameter "radiusKm" -------------

	err = runtime.BindQueryParameter("form", true, false, "radiusKm", ctx.QueryParams(), &params.RadiusKm)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter radiusKm: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableCouriers(ctx, params)
	return err
}

// MarkCourierUnavailable converts echo context to params.
func (w *ServerInterfaceWrapper) MarkCourierUnavailable(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId CourierId

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkCourierUnavailable(ctx, courierId)
	return err
}

// MarkCourierAvailable converts echo context to params.
func (w *ServerInterfaceWrapper) MarkCourierAvailable(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId CourierId

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkCourierAvailable(ctx, courierId)
	return err
}

// UpdateCourierLocation converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCourierLocation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId CourierId

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCourierLocation(ctx, courierId)
	return err
}

// GetDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDelivery(ctx, deliveryId)
	return err
}

// DropByBaker converts echo context to params.
func (w *ServerInterfaceWrapper) DropByBaker(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DropByBaker(ctx, deliveryId)
	return err
}

// ConfirmDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ConfirmDelivery(ctx, deliveryId)
	return err
}

// DropByCourier converts echo context to params.
func (w *ServerInterfaceWrapper) DropByCourier(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DropByCourier(ctx, deliveryId)
	return err
}

// PickUpPackage converts echo context to params.
func (w *ServerInterfaceWrapper) PickUpPackage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PickUpPackage(ctx, deliveryId)
	return err
}

// RetrievePackage converts echo context to params.
func (w *ServerInterfaceWrapper) RetrievePackage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RetrievePackage(ctx, deliveryId)
	return err
}

// ChooseLocation converts echo context to params.
func (w *ServerInterfaceWrapper) ChooseLocation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "locationId" -------------
	var locationId LocationId

	err = runtime.BindStyledParameterWithOptions("simple", "locationId", ctx.Param("locationId"), &locationId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter locationId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChooseLocation(ctx, locationId)
	return err
}

// ListOffers converts echo context to params.
func (w *ServerInterfaceWrapper) ListOffers(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListOffersParams
	// ------------- Optional query parameter "courierId" -------------

	err = runtime.BindQueryParameter("form", true, false, "courierId", ctx.QueryParams(), &params.CourierId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// ------------- Optional query parameter "deliveryId" -------------

	err = runtime.BindQueryParameter("form", true, false, "deliveryId", ctx.QueryParams(), &params.DeliveryId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOffers(ctx, params)
	return err
}

// AcceptOffer converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOffer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "offerId" -------------
	var offerId OfferId

	err = runtime.BindStyledParameterWithOptions("simple", "offerId", ctx.Param("offerId"), &offerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AcceptOffer(ctx, offerId)
	return err
}

// CancelOffer converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOffer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "offerId" -------------
	var offerId OfferId

	err = runtime.BindStyledParameterWithOptions("simple", "offerId", ctx.Param("offerId"), &offerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOffer(ctx, offerId)
	return err
}

// GetPackageLocation converts echo context to params.
func (w *ServerInterfaceWrapper) GetPackageLocation(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "offerId" -------------
	var offerId OfferId

	err = runtime.BindStyledParameterWithOptions("simple", "offerId", ctx.Param("offerId"), &offerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offerId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetPackageLocationParams
	// ------------- Required query parameter "courierId" -------------

	err = runtime.BindQueryParameter("form", true, true, "courierId", ctx.QueryParams(), &params.CourierId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// ------------- Required query parameter "lat" -------------

	err = runtime.BindQueryParameter("form", true, true, "lat", ctx.QueryParams(), &params.Lat)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat: %s", err))
	}

	// ------------- Required query parameter "lon" -------------

	err = runtime.BindQueryParameter("form", true, true, "lon", ctx.QueryParams(), &params.Lon)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lon: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPackageLocation(ctx, offerId, params)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// GetOrderDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderDelivery(ctx, orderId)
	return err
}

// GetPayment converts echo context to params.
func (w *ServerInterfaceWrapper) GetPayment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPayment(ctx, orderId)
	return err
}

// Pay converts echo context to params.
func (w *ServerInterfaceWrapper) Pay(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Pay(ctx, orderId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/baked-goods", wrapper.ListBakedGoods)
	router.POST(baseURL+"/baked-goods", wrapper.PublishBakedGood)
	router.GET(baseURL+"/baked-goods/:bakedGoodsId", wrapper.GetBakedGood)
	router.PUT(baseURL+"/baked-goods/:bakedGoodsId/price", wrapper.UpdateBakedGoodPrice)
	router.POST(baseURL+"/baked-goods/:bakedGoodsId/restock", wrapper.RestockBakedGood)
	router.POST(baseURL+"/baked-goods/:bakedGoodsId/reviews", wrapper.AddReview)
	router.GET(baseURL+"/carts/:cartId", wrapper.GetCart)
	router.POST(baseURL+"/carts/:cartId/checkout", wrapper.Checkout)
	router.POST(baseURL+"/carts/:cartId/items", wrapper.AddCartItem)
	router.DELETE(baseURL+"/carts/:cartId/items/:bakedGoodsId", wrapper.RemoveCartItem)
	router.PATCH(baseURL+"/carts/:cartId/items/:bakedGoodsId", wrapper.AdjustCartItemQuantity)
	router.PUT(baseURL+"/carts/:cartId/items/:bakedGoodsId", wrapper.SetCartItemQuantity)
	router.GET(baseURL+"/couriers/available", wrapper.ListAvailableCouriers)
	router.DELETE(baseURL+"/couriers/:courierId/availability", wrapper.MarkCourierUnavailable)
	router.PUT(baseURL+"/couriers/:courierId/availability", wrapper.MarkCourierAvailable)
	router.PUT(baseURL+"/couriers/:courierId/location", wrapper.UpdateCourierLocation)
	router.GET(baseURL+"/deliveries/:deliveryId", wrapper.GetDelivery)
	router.POST(baseURL+"/deliveries/:deliveryId/baker-drop", wrapper.DropByBaker)
	router.POST(baseURL+"/deliveries/:deliveryId/confirm", wrapper.ConfirmDelivery)
	router.POST(baseURL+"/deliveries/:deliveryId/courier-drop", wrapper.DropByCourier)
	router.POST(baseURL+"/deliveries/:deliveryId/pickup", wrapper.PickUpPackage)
	router.POST(baseURL+"/deliveries/:deliveryId/retrieve", wrapper.RetrievePackage)
	router.PUT(baseURL+"/locations/:locationId", wrapper.ChooseLocation)
	router.GET(baseURL+"/offers", wrapper.ListOffers)
	router.POST(baseURL+"/offers/:offerId/accept", wrapper.AcceptOffer)
	router.POST(baseURL+"/offers/:offerId/cancel", wrapper.CancelOffer)
	router.GET(baseURL+"/offers/:offerId/package-location", wrapper.GetPackageLocation)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/orders/:orderId/delivery", wrapper.GetOrderDelivery)
	router.GET(baseURL+"/orders/:orderId/payment", wrapper.GetPayment)
	router.POST(baseURL+"/orders/:orderId/payment", wrapper.Pay)

}

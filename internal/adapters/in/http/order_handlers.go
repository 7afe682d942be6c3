package http

import (
	"errors"
	"io"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.orderHandler.HandleList(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, "Failed to retrieve orders", err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	o, err := s.orderHandler.HandleGet(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve order", err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetPayment handles GET /api/v1/orders/{orderId}/payment.
func (s *Server) GetPayment(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}
	query, err := queries.NewGetPaymentQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	p, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve payment", err)
	}

	items := make([]servers.PaymentItem, len(p.Items))
	for i, item := range p.Items {
		items[i] = servers.PaymentItem{
			BakedGoodsId: item.BakedGoodsID.Bytes(),
			Quantity:     item.Quantity,
			Price:        item.Price.Cents(),
			TotalPrice:   item.TotalPrice.Cents(),
		}
	}
	return ctx.JSON(http.StatusOK, servers.Payment{
		OrderId:       p.OrderID.Bytes(),
		CartId:        p.CartID.Bytes(),
		Status:        p.Status,
		Total:         p.Total.Cents(),
		TransactionId: optionalString(p.TransactionID),
		FailureReason: optionalString(p.FailureReason),
		WalletAddress: optionalString(p.WalletAddress),
		Customer:      toLocation(p.Customer),
		Items:         items,
	})
}

// Pay handles POST /api/v1/orders/{orderId}/payment - charges the customer through
// the payment gateway. The body is optional.
func (s *Server) Pay(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.PayJSONRequestBody
	if err := ctx.Bind(&body); err != nil && !errors.Is(err, io.EOF) {
		return badRequest(ctx, "Invalid request body", nil)
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}
	wallet := ""
	if body.WalletAddress != nil {
		wallet = *body.WalletAddress
	}
	cmd, err := commands.NewPayCommand(id, wallet)
	if err != nil {
		return badRequest(ctx, "Invalid payment", err)
	}

	status, err := s.payHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "Failed to pay", err)
	}
	return ctx.JSON(http.StatusOK, servers.PayResult{Status: status.String()})
}

// GetOrderDelivery handles GET /api/v1/orders/{orderId}/delivery.
func (s *Server) GetOrderDelivery(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}
	query, err := queries.NewGetDeliveryByOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	d, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve delivery", err)
	}
	return ctx.JSON(http.StatusOK, toDelivery(d))
}

func toOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			BakedGoodsId: item.BakedGoodsID.Bytes(),
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.Cents(),
			LineTotal:    item.LineTotal.Cents(),
		}
	}
	return servers.Order{
		Id:        o.ID.Bytes(),
		CartId:    o.CartID.Bytes(),
		Status:    o.Status,
		Subtotal:  o.Subtotal.Cents(),
		Customer:  toLocation(o.Customer),
		CreatedAt: o.CreatedAt,
		Items:     items,
	}
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	publishBakedGoodHandler commands.PublishBakedGoodCommandHandler
	changeBakedGoodHandler  commands.ChangeBakedGoodCommandHandler
	chooseLocationHandler   commands.ChooseLocationCommandHandler
	cartHandler             commands.CartCommandHandler
	checkoutHandler         commands.CheckoutCommandHandler
	payHandler              commands.PayCommandHandler
	deliveryHandler         commands.DeliveryCommandHandler
	courierHandler          commands.CourierCommandHandler
	offerHandler            commands.OfferCommandHandler

	// Query handlers
	listBakedGoodsHandler     queries.ListBakedGoodsQueryHandler
	getBakedGoodHandler       queries.GetBakedGoodQueryHandler
	getCartHandler            queries.GetCartQueryHandler
	orderHandler              queries.OrderQueryHandler
	getPaymentHandler         queries.GetPaymentQueryHandler
	getDeliveryHandler        queries.GetDeliveryQueryHandler
	listCouriersHandler       queries.ListAvailableCouriersQueryHandler
	listOffersHandler         queries.ListOffersQueryHandler
	getPackageLocationHandler queries.GetPackageLocationQueryHandler

	newID  func() kernel.UUID
	logger *slog.Logger
}

// CommandHandlers groups the write side served over HTTP.
type CommandHandlers struct {
	PublishBakedGood commands.PublishBakedGoodCommandHandler
	ChangeBakedGood  commands.ChangeBakedGoodCommandHandler
	ChooseLocation   commands.ChooseLocationCommandHandler
	Cart             commands.CartCommandHandler
	Checkout         commands.CheckoutCommandHandler
	Pay              commands.PayCommandHandler
	Delivery         commands.DeliveryCommandHandler
	Courier          commands.CourierCommandHandler
	Offer            commands.OfferCommandHandler
}

// QueryHandlers groups the read side served over HTTP.
type QueryHandlers struct {
	ListBakedGoods     queries.ListBakedGoodsQueryHandler
	GetBakedGood       queries.GetBakedGoodQueryHandler
	GetCart            queries.GetCartQueryHandler
	Orders             queries.OrderQueryHandler
	GetPayment         queries.GetPaymentQueryHandler
	GetDelivery        queries.GetDeliveryQueryHandler
	ListCouriers       queries.ListAvailableCouriersQueryHandler
	ListOffers         queries.ListOffersQueryHandler
	GetPackageLocation queries.GetPackageLocationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(c CommandHandlers, q QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		publishBakedGoodHandler:   c.PublishBakedGood,
		changeBakedGoodHandler:    c.ChangeBakedGood,
		chooseLocationHandler:     c.ChooseLocation,
		cartHandler:               c.Cart,
		checkoutHandler:           c.Checkout,
		payHandler:                c.Pay,
		deliveryHandler:           c.Delivery,
		courierHandler:            c.Courier,
		offerHandler:              c.Offer,
		listBakedGoodsHandler:     q.ListBakedGoods,
		getBakedGoodHandler:       q.GetBakedGood,
		getCartHandler:            q.GetCart,
		orderHandler:              q.Orders,
		getPaymentHandler:         q.GetPayment,
		getDeliveryHandler:        q.GetDelivery,
		listCouriersHandler:       q.ListCouriers,
		listOffersHandler:         q.ListOffers,
		getPackageLocationHandler: q.GetPackageLocation,
		newID:                     kernel.NewUUID,
		logger:                    logger.With("component", "http_server"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// badRequest answers input the command or query constructors rejected.
func badRequest(ctx echo.Context, message string, err error) error {
	if err != nil {
		message += ": " + err.Error()
	}
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a use case error to its HTTP status.
func (s *Server) fail(ctx echo.Context, message string, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	} else {
		message += ": " + err.Error()
	}
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrPreconditionViolated):
		return http.StatusConflict
	case errs.IsPreconditionViolation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toLocation(l kernel.GeoLocation) servers.Location {
	return servers.Location{Lat: l.Lat(), Lon: l.Lon()}
}

func fromLocation(l servers.Location) (kernel.GeoLocation, error) {
	return kernel.NewGeoLocation(l.Lat, l.Lon)
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

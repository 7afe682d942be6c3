package http

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"bakery/internal/generated/servers"
	"bakery/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

var registerDocOnce sync.Once

// NewRouter wires the API, health, metrics and swagger routes onto a fresh echo
// instance. Requests under BasePath are validated against doc before they reach
// the server.
func NewRouter(server *Server, doc *openapi3.T, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, embeddedDoc{doc: doc})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validate)
	servers.RegisterHandlersWithBaseURL(api, server, BasePath)

	return e, nil
}

// embeddedDoc serves the loaded OpenAPI document through the swag registry.
type embeddedDoc struct {
	doc *openapi3.T
}

func (d embeddedDoc) ReadDoc() string {
	raw, err := d.doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// requestValidator checks parameters and bodies of known API routes. Unknown
// routes pass through so echo answers them itself.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	hostless := *doc
	hostless.Servers = nil
	router, err := legacyrouter.NewRouter(&hostless)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, BasePath) {
				return next(c)
			}

			routed := req.Clone(req.Context())
			routed.URL.Path = strings.TrimPrefix(req.URL.Path, BasePath)
			routed.URL.RawPath = ""
			route, pathParams, err := router.FindRoute(routed)
			if err != nil {
				return next(c)
			}

			if req.Body != nil {
				body, readErr := io.ReadAll(req.Body)
				if readErr != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "Unreadable request body")
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
				routed.Body = io.NopCloser(bytes.NewReader(body))
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    routed,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid request: "+firstLine(err.Error()))
			}
			return next(c)
		}
	}, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "Request handled", attrs...)
			return nil
		},
	})
}

// errorHandler renders errors that escaped the handlers in the API error shape.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error",
				"path", c.Path(),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

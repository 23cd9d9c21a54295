// Package http is the inbound REST adapter: routing, request validation
// against the embedded OpenAPI document, error mapping, tracing and request
// logging, all on Echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the database answers. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter builds the Echo instance serving the order API, /health and the
// Swagger UI.
//
// Example:
//
//	e, err := http.NewRouter(ctx, server, sqlDB, logger)
//	if err != nil {
//	    return err
//	}
//	go e.Start(":8080")
func NewRouter(ctx context.Context, server *Server, db Pinger, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerAPIDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler(logger)

	e.Use(
		requestLogger(logger),
		tracing(),
		middleware.Recover(),
	)

	e.GET("/health", health(db))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	orders := e.Group("/orders", validator)
	orders.GET("", server.ListOrders)
	orders.POST("", server.CreateOrder)
	orders.GET("/:orderId", server.GetOrder)
	orders.PATCH("/:orderId", server.FinishOrder)
	orders.GET("/bycar/:carId", server.ListOrdersByCar)
	orders.GET("/byuser/:userId", server.ListOrdersByUser)

	return e, nil
}

func health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, Error{
				Code:    http.StatusServiceUnavailable,
				Message: "database is unreachable",
			})
		}
		return c.String(http.StatusOK, "Healthy")
	}
}

package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Use-case ports consumed by the server. The command and query handlers
// satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ReserveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ReserveOrderCommand) (*order.Order, error)
	}
	FinishOrderHandler interface {
		Handle(ctx context.Context, cmd commands.FinishOrderCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}
)

// UseCases bundles the handlers the server dispatches to.
type UseCases struct {
	CreateOrder  CreateOrderHandler
	ReserveOrder ReserveOrderHandler
	FinishOrder  FinishOrderHandler
	GetOrder     GetOrderHandler
	ListOrders   ListOrdersHandler
}

// Server handles the /orders endpoints.
type Server struct {
	useCases UseCases
	clock    kernel.Clock
	logger   *slog.Logger
}

// NewServer creates a server. clock decides whether a POST /orders is a
// reservation.
func NewServer(useCases UseCases, clock kernel.Clock, logger *slog.Logger) *Server {
	return &Server{
		useCases: useCases,
		clock:    clock,
		logger:   logger,
	}
}

// CreateOrder handles POST /orders. A start date in the future makes the
// request a reservation; anything else rents the car now and ignores the end
// date.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()

	var (
		created *order.Order
		err     error
	)
	now := s.clock.Now()
	if body.StartDate != nil && body.StartDate.After(now) {
		var cmd commands.ReserveOrderCommand
		cmd, err = commands.NewReserveOrderCommand(body.UserID, body.CarID, *body.StartDate, body.EndDate)
		if err != nil {
			return s.writeError(c, err)
		}
		created, err = s.useCases.ReserveOrder.Handle(ctx, cmd.WithRequestedAt(now))
	} else {
		var cmd commands.CreateOrderCommand
		cmd, err = commands.NewCreateOrderCommand(body.UserID, body.CarID)
		if err != nil {
			return s.writeError(c, err)
		}
		created, err = s.useCases.CreateOrder.Handle(ctx, cmd)
	}
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderFromDomain(created))
}

// FinishOrder handles PATCH /orders/{orderId}.
func (s *Server) FinishOrder(c echo.Context) error {
	orderID, err := bindIDParam(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewFinishOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	finished, err := s.useCases.FinishOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(finished))
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindIDParam(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	found, err := s.useCases.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderFromReadModel(found))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	return s.list(c, queries.NewListAllOrdersQuery())
}

// ListOrdersByCar handles GET /orders/bycar/{carId}.
func (s *Server) ListOrdersByCar(c echo.Context) error {
	carID, err := bindIDParam(c, "carId")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersByCarQuery(carID)
	if err != nil {
		return s.writeError(c, err)
	}
	return s.list(c, query)
}

// ListOrdersByUser handles GET /orders/byuser/{userId}.
func (s *Server) ListOrdersByUser(c echo.Context) error {
	userID, err := bindIDParam(c, "userId")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersByUserQuery(userID)
	if err != nil {
		return s.writeError(c, err)
	}
	return s.list(c, query)
}

func (s *Server) list(c echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.useCases.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromReadModel(orders))
}

func bindIDParam(c echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return id, nil
}

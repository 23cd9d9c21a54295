package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// CreateOrderCommandHandler opens a rental that starts now.
//
// Checks run in this order and stop at the first failure:
//  1. the car is not end-of-life (services.ErrCarIsEOL)
//  2. the car is not in use now (services.ErrCarInUse)
//  3. the user is active and not banned (services.ErrUserIneligible)
//
// Nothing is persisted unless all of them pass.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, users, cars, kernel.SystemClock{})
//	cmd, _ := NewCreateOrderCommand(1, 1)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrCarUnavailable):
//	    // EOL or in use
//	case errors.Is(err, services.ErrUserIneligible):
//	    // inactive or banned
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	checks     bookingChecks
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for immediate rentals.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserClient,
	cars ports.CarClient,
	clock kernel.Clock,
	opts ...BookingOption,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		checks:     newBookingChecks(users, cars, opts),
		clock:      clock,
	}
}

// Handle runs the checks, stamps the start date and stores the order.
// The returned order carries the store-assigned ID.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.checks.checkCarIsNotEOL(ctx, cmd.CarID()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()

	orderRepo := uow.OrderRepository()
	if err := h.checks.checkCarIsFree(ctx, orderRepo, cmd.CarID(), now); err != nil {
		return nil, err
	}

	if err := h.checks.checkUserMayRent(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	started, err := order.StartOrder(cmd.UserID(), cmd.CarID(), now)
	if err != nil {
		return nil, err
	}

	stored, err := orderRepo.Add(ctx, started)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}

package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// ReserveOrderCommandHandler books a car for a future time range.
//
// Checks run in this order and stop at the first failure:
//  1. the range starts after now and ends after its start (order.ErrIllegalReservation)
//  2. the user is active and not banned (services.ErrUserIneligible)
//  3. the car is not end-of-life (services.ErrCarIsEOL)
//  4. the car is not in use at the requested start (services.ErrCarInUse)
//
// The stored order carries exactly the requested dates.
type ReserveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	checks     bookingChecks
	clock      kernel.Clock
}

// NewReserveOrderCommandHandler creates a handler for future rentals.
func NewReserveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserClient,
	cars ports.CarClient,
	clock kernel.Clock,
	opts ...BookingOption,
) ReserveOrderCommandHandler {
	return ReserveOrderCommandHandler{
		uowFactory: uowFactory,
		checks:     newBookingChecks(users, cars, opts),
		clock:      clock,
	}
}

// Handle runs the checks and stores the reservation.
func (h ReserveOrderCommandHandler) Handle(ctx context.Context, cmd ReserveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := cmd.RequestedAt()
	if now.IsZero() {
		now = h.clock.Now()
	}

	reservation, err := order.NewReservation(cmd.UserID(), cmd.CarID(), cmd.StartDate(), cmd.EndDate(), now)
	if err != nil {
		return nil, err
	}

	if err = h.checks.checkUserMayRent(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	if err = h.checks.checkCarIsNotEOL(ctx, cmd.CarID()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = h.checks.checkCarIsFree(ctx, orderRepo, cmd.CarID(), cmd.StartDate()); err != nil {
		return nil, err
	}

	stored, err := orderRepo.Add(ctx, reservation)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}

package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// FinishOrderCommandHandler ends a rental.
//
// An order whose start date is after now is canceled: its dates are cleared
// and no bill is issued. Any other open order is concluded at now and billed
// through the accounting service; the order is stored with the bill ID only
// after the bill has been accepted, and nothing is stored if billing fails.
// Finishing a canceled or finished order fails with order.ErrOrderIsClosed.
//
// Example:
//
//	cmd, _ := NewFinishOrderCommand(42)
//	finished, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserClient
	cars       ports.CarClient
	billing    ports.BillingClient
	calculator services.BillingCalculator
	clock      kernel.Clock
}

func NewFinishOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserClient,
	cars ports.CarClient,
	billing ports.BillingClient,
	clock kernel.Clock,
) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		cars:       cars,
		billing:    billing,
		calculator: services.NewBillingCalculator(),
		clock:      clock,
	}
}

// Handle cancels or concludes the order and returns its stored state.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	exists, err := orderRepo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = current.Status().ValidateOpen(); err != nil {
		return nil, err
	}

	now := h.clock.Now()

	var finished *order.Order
	if current.StartsAfter(now) {
		finished, err = current.Cancel()
	} else {
		finished, err = h.conclude(ctx, current, now)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, finished); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return finished, nil
}

func (h FinishOrderCommandHandler) conclude(ctx context.Context, current *order.Order, now time.Time) (*order.Order, error) {
	concluded, err := current.Conclude(now)
	if err != nil {
		return nil, err
	}

	renter, err := h.users.GetUser(ctx, concluded.UserID())
	if err != nil {
		return nil, err
	}

	rented, err := h.cars.GetCar(ctx, concluded.CarID())
	if err != nil {
		return nil, err
	}

	issued, err := h.calculator.IssueBill(concluded, renter, rented, now)
	if err != nil {
		return nil, err
	}

	stored, err := h.billing.SubmitBill(ctx, concluded.ID(), issued)
	if err != nil {
		return nil, err
	}

	return concluded.AttachBill(stored.ID())
}

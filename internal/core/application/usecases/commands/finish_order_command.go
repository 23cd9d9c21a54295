package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand requests the end of a rental: either the return of the
// car or, for a reservation that has not started, its cancellation.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewFinishOrderCommand(orderID int64) (FinishOrderCommand, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return FinishOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return FinishOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

func (c FinishOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

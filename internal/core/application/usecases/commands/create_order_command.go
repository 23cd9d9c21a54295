package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand requests a rental that starts immediately.
// The start date is always set by the server, so the command carries none.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	carID  kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the user and car references.
func NewCreateOrderCommand(userID, carID int64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setCarID(carID),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c CreateOrderCommand) CarID() kernel.ID {
	return c.carID
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	id, err := kernel.NewID(userID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *CreateOrderCommand) setCarID(carID int64) error {
	id, err := kernel.NewID(carID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carId", err)
	}
	c.carID = id
	return nil
}

package commands

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrReserveOrderCommandIsNotConstructed = errors.New(
	"ReserveOrderCommand must be created via NewReserveOrderCommand constructor",
)

// ReserveOrderCommand requests a rental for a future time range.
// Whether the range lies in the future is decided by the handler against the
// command's request time, or its own clock when none is set; the constructor
// only checks the range shape.
type ReserveOrderCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	carID  kernel.ID

	startDate   time.Time
	endDate     time.Time
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewReserveOrderCommand validates the references and the requested range.
// A missing end date, or one not after the start date, wraps
// order.ErrIllegalReservation.
func NewReserveOrderCommand(userID, carID int64, startDate time.Time, endDate *time.Time) (ReserveOrderCommand, error) {
	cmd := ReserveOrderCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setCarID(carID),
		cmd.setRange(startDate, endDate),
	); err != nil {
		return ReserveOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReserveOrderCommandIsNotConstructed)
}

func (c ReserveOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c ReserveOrderCommand) CarID() kernel.ID {
	return c.carID
}

func (c ReserveOrderCommand) StartDate() time.Time {
	return c.startDate
}

func (c ReserveOrderCommand) EndDate() time.Time {
	return c.endDate
}

// WithRequestedAt pins the instant the start date is judged against. Callers
// that already compared the start date with their own reading of the clock
// pass that reading so both decisions agree.
func (c ReserveOrderCommand) WithRequestedAt(t time.Time) ReserveOrderCommand {
	c.requestedAt = t
	return c
}

// RequestedAt is zero unless set by WithRequestedAt.
func (c ReserveOrderCommand) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *ReserveOrderCommand) setUserID(userID int64) error {
	id, err := kernel.NewID(userID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *ReserveOrderCommand) setCarID(carID int64) error {
	id, err := kernel.NewID(carID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carId", err)
	}
	c.carID = id
	return nil
}

func (c *ReserveOrderCommand) setRange(startDate time.Time, endDate *time.Time) error {
	if endDate == nil {
		return fmt.Errorf("%w: a reservation needs an end date", order.ErrIllegalReservation)
	}
	if !endDate.After(startDate) {
		return fmt.Errorf("%w: end date %s is not after start date %s",
			order.ErrIllegalReservation, endDate.Format(time.RFC3339), startDate.Format(time.RFC3339))
	}
	c.startDate = startDate
	c.endDate = *endDate
	return nil
}

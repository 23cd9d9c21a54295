package order

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Status is the lifecycle state of an order, derived from its fields.
//
//	Open ──┬──> Canceled   (start still in the future)
//	       └──> Finished   (started, concluded and billed)
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Open covers both running rentals and reservations that have not started yet.
	Open

	// Canceled orders were closed before their start. Both dates are cleared.
	Canceled

	// Finished orders have an end date and a bill.
	Finished
)

func (s Status) String() string {
	switch s {
	case Open:
		return "Open"
	case Canceled:
		return "Canceled"
	case Finished:
		return "Finished"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case Open, Canceled, Finished:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Canceled || s == Finished
}

// ValidateOpen returns ErrOrderIsClosed unless the status is Open.
func (s Status) ValidateOpen() error {
	if s != Open {
		return fmt.Errorf("%w: order is %s", ErrOrderIsClosed, s)
	}
	return nil
}

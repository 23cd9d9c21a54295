package order

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// StartOrder, NewReservation or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via StartOrder, NewReservation or RestoreOrder")

	// ErrOrderIsClosed is returned when a transition is requested on a Canceled or Finished order.
	ErrOrderIsClosed = errors.New("order is already closed")

	// ErrIllegalReservation is returned when a reservation's time range is malformed.
	ErrIllegalReservation = errors.New("illegal reservation")

	// ErrOrderNotStarted is returned when concluding an order before its start.
	ErrOrderNotStarted = errors.New("order has not started yet")
)

// Order is a car rental by one user. It is the aggregate root of this service.
//
// Order follows these invariants:
//   - userID and carID are valid references
//   - a non-canceled order always has a start date
//   - an end date is never before the start date
//   - a canceled order has neither start nor end date nor bill
//   - a bill is attached only to an order with an end date
//
// For a reservation the end date is the requested return time. Concluding the
// order replaces it with the actual return time.
type Order struct {
	// id is assigned by the order store on first insert (kernel.NoID before that)
	id kernel.ID

	userID kernel.ID
	carID  kernel.ID

	startDate *time.Time
	endDate   *time.Time

	canceled bool

	// billID references the bill stored by the accounting service
	billID *kernel.ID

	isConstructed bool
}

// StartOrder opens a rental that starts at now.
//
// Example:
//
//	o, err := order.StartOrder(userID, carID, clock.Now())
//	if err != nil {
//	    return err
//	}
//	o, err = repo.Add(ctx, o) // o.ID() is assigned now
func StartOrder(userID, carID kernel.ID, now time.Time) (*Order, error) {
	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setUserID(userID),
		o.setCarID(carID),
	); err != nil {
		return nil, err
	}
	o.startDate = timePtr(now)
	return o, nil
}

// NewReservation opens a rental that starts in the future.
// start must be strictly after now and end strictly after start, otherwise the
// error wraps ErrIllegalReservation. Both dates are kept exactly as given.
func NewReservation(userID, carID kernel.ID, start, end, now time.Time) (*Order, error) {
	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setUserID(userID),
		o.setCarID(carID),
		validateReservationRange(start, end, now),
	); err != nil {
		return nil, err
	}
	o.startDate = timePtr(start)
	o.endDate = timePtr(end)
	return o, nil
}

// RestoreOrder rebuilds a persisted order and checks every invariant.
// It is meant for repositories. Business code opens orders through StartOrder
// or NewReservation.
func RestoreOrder(
	id, userID, carID kernel.ID,
	startDate, endDate *time.Time,
	canceled bool,
	billID *kernel.ID,
) (*Order, error) {
	o := &Order{
		canceled:      canceled,
		isConstructed: true,
	}
	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCarID(carID),
	); err != nil {
		return nil, err
	}
	o.startDate = copyTime(startDate)
	o.endDate = copyTime(endDate)
	if billID != nil {
		if err := billID.Validate(); err != nil {
			return nil, err
		}
		b := *billID
		o.billID = &b
	}

	if err := o.checkInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Order was built by one of the constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or kernel.NoID before the first insert.
func (o *Order) ID() kernel.ID {
	return o.id
}

// UserID returns the renting user.
func (o *Order) UserID() kernel.ID {
	return o.userID
}

// CarID returns the rented car.
func (o *Order) CarID() kernel.ID {
	return o.carID
}

// StartDate returns a copy of the start date, or nil for a canceled order.
func (o *Order) StartDate() *time.Time {
	return copyTime(o.startDate)
}

// EndDate returns a copy of the end date, or nil while a direct rental is running.
func (o *Order) EndDate() *time.Time {
	return copyTime(o.endDate)
}

// IsCanceled reports whether the order was canceled before its start.
func (o *Order) IsCanceled() bool {
	return o.canceled
}

// BillID returns the attached bill reference, or nil.
func (o *Order) BillID() *kernel.ID {
	if o.billID == nil {
		return nil
	}
	b := *o.billID
	return &b
}

// Status derives the lifecycle state.
func (o *Order) Status() Status {
	switch {
	case o.canceled:
		return Canceled
	case o.billID != nil:
		return Finished
	default:
		return Open
	}
}

// StartsAfter reports whether the order's start lies strictly after t.
// Such an order has never been started and can only be canceled.
func (o *Order) StartsAfter(t time.Time) bool {
	return o.startDate != nil && o.startDate.After(t)
}

// AssignID returns a copy carrying the identifier the store generated on insert.
func (o *Order) AssignID(id kernel.ID) (*Order, error) {
	if o.id.IsAssigned() {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has id %s", o.id))
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	next := o.clone()
	next.id = id
	return next, nil
}

// Cancel closes an open order that has not started. Both dates are cleared.
func (o *Order) Cancel() (*Order, error) {
	if err := o.Status().ValidateOpen(); err != nil {
		return nil, err
	}
	next := o.clone()
	next.canceled = true
	next.startDate = nil
	next.endDate = nil
	return next, nil
}

// Conclude sets the end date of a started open order to now.
// The order stays Open until a bill is attached.
func (o *Order) Conclude(now time.Time) (*Order, error) {
	if err := o.Status().ValidateOpen(); err != nil {
		return nil, err
	}
	if o.startDate == nil || o.startDate.After(now) {
		return nil, ErrOrderNotStarted
	}
	next := o.clone()
	next.endDate = timePtr(now)
	return next, nil
}

// AttachBill stores the reference of the bill issued for a concluded order,
// which moves it to Finished.
func (o *Order) AttachBill(billID kernel.ID) (*Order, error) {
	if err := o.Status().ValidateOpen(); err != nil {
		return nil, err
	}
	if o.endDate == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("endDate", errors.New("order must be concluded before billing"))
	}
	if err := billID.Validate(); err != nil {
		return nil, err
	}
	next := o.clone()
	next.billID = &billID
	return next, nil
}

func (o *Order) clone() *Order {
	next := *o
	next.startDate = copyTime(o.startDate)
	next.endDate = copyTime(o.endDate)
	if o.billID != nil {
		b := *o.billID
		next.billID = &b
	}
	return &next
}

func (o *Order) checkInvariants() error {
	if o.canceled {
		if o.startDate != nil || o.endDate != nil || o.billID != nil {
			return errs.NewValueIsInvalidErrorWithCause("order", errors.New("canceled order must not carry dates or a bill"))
		}
		return nil
	}
	if o.startDate == nil {
		return errs.NewValueIsRequiredErrorWithCause("startDate", errors.New("open or finished order must have a start date"))
	}
	if o.endDate != nil && o.endDate.Before(*o.startDate) {
		return errs.NewValueIsInvalidErrorWithCause("endDate", fmt.Errorf("%s is before start %s",
			o.endDate.Format(time.RFC3339), o.startDate.Format(time.RFC3339)))
	}
	if o.billID != nil && o.endDate == nil {
		return errs.NewValueIsRequiredErrorWithCause("endDate", errors.New("billed order must have an end date"))
	}
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setCarID(carID kernel.ID) error {
	if err := carID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carId", err)
	}
	o.carID = carID
	return nil
}

func validateReservationRange(start, end, now time.Time) error {
	if !start.After(now) {
		return fmt.Errorf("%w: start date %s is not in the future", ErrIllegalReservation, start.Format(time.RFC3339))
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end date %s is not after start date %s",
			ErrIllegalReservation, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

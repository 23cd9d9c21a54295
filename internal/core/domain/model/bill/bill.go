// Package bill models the invoice issued when a rental is finished.
//
// Bills are stored by the accounting service, which assigns their ID. This
// service builds the bill, submits it and keeps only the returned reference on
// the order.
package bill

import (
	"errors"
	"fmt"
	"math"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// PaymentTerm is the time between issuing a bill and its payment deadline.
const PaymentTerm = 7 * 24 * time.Hour

var ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")

// Bill is the charge for one finished rental.
type Bill struct {
	id                  kernel.ID
	userID              kernel.ID
	recipient           user.Address
	value               float64
	creationDate        time.Time
	paymentDeadlineDate time.Time

	guard guard.ConstructorGuard
}

// NewBill issues an unsaved bill addressed to the renter. The payment deadline
// is creationDate plus PaymentTerm.
//
// Example:
//
//	b, err := bill.NewBill(u.ID(), u.Address(), 30.0, clock.Now())
//	stored, err := billing.SubmitBill(ctx, orderID, b)
func NewBill(userID kernel.ID, recipient user.Address, value float64, creationDate time.Time) (Bill, error) {
	if err := errors.Join(userID.Validate(), validateValue(value)); err != nil {
		return Bill{}, err
	}
	return Bill{
		userID:              userID,
		recipient:           recipient,
		value:               value,
		creationDate:        creationDate,
		paymentDeadlineDate: creationDate.Add(PaymentTerm),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// RestoreBill rebuilds a bill returned by the accounting service.
func RestoreBill(
	id, userID kernel.ID,
	recipient user.Address,
	value float64,
	creationDate, paymentDeadlineDate time.Time,
) (Bill, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), validateValue(value)); err != nil {
		return Bill{}, err
	}
	if paymentDeadlineDate.Before(creationDate) {
		return Bill{}, errs.NewValueIsInvalidErrorWithCause("paymentDeadlineDate",
			fmt.Errorf("%s is before creation date", paymentDeadlineDate.Format(time.RFC3339)))
	}
	return Bill{
		id:                  id,
		userID:              userID,
		recipient:           recipient,
		value:               value,
		creationDate:        creationDate,
		paymentDeadlineDate: paymentDeadlineDate,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (b Bill) Validate() error {
	return b.guard.Validate(ErrBillIsNotConstructed)
}

// ID is kernel.NoID until the accounting service stored the bill.
func (b Bill) ID() kernel.ID {
	return b.id
}

func (b Bill) UserID() kernel.ID {
	return b.userID
}

func (b Bill) Recipient() user.Address {
	return b.recipient
}

func (b Bill) Value() float64 {
	return b.value
}

func (b Bill) CreationDate() time.Time {
	return b.creationDate
}

func (b Bill) PaymentDeadlineDate() time.Time {
	return b.paymentDeadlineDate
}

func validateValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errs.NewValueIsOutOfRangeError("value", value, 0, math.MaxFloat64)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/bill"
	"ordermanagement/internal/core/domain/model/car"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
)

// MinBillableHours is charged even for rentals shorter than an hour.
const MinBillableHours int64 = 1

// BillingCalculator prices a concluded rental. The price is a fixed formula:
// the car's base hourly rent times the billable hours.
//
// Example:
//
//	concluded, _ := o.Conclude(now)
//	b, err := services.NewBillingCalculator().IssueBill(concluded, renter, rentedCar, now)
//	// 3h27m at 10.0/h => b.Value() == 30.0
type BillingCalculator struct{}

func NewBillingCalculator() BillingCalculator {
	return BillingCalculator{}
}

// BillableHours is the whole number of hours between start and end, rounded
// down, and never less than MinBillableHours.
func (BillingCalculator) BillableHours(start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("%s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}
	hours := int64(end.Sub(start) / time.Hour)
	if hours < MinBillableHours {
		hours = MinBillableHours
	}
	return hours, nil
}

// Charge is basePrice × billableHours.
func (BillingCalculator) Charge(c car.Car, billableHours int64) float64 {
	return c.BaseRentPrice() * float64(billableHours)
}

// IssueBill builds the bill for a concluded order. The bill is addressed to
// the renter, dated issuedAt and due PaymentTerm later.
func (b BillingCalculator) IssueBill(o *order.Order, renter user.User, rented car.Car, issuedAt time.Time) (bill.Bill, error) {
	if err := o.Validate(); err != nil {
		return bill.Bill{}, err
	}
	start, end := o.StartDate(), o.EndDate()
	if start == nil || end == nil {
		return bill.Bill{}, errs.NewValueIsRequiredErrorWithCause("endDate", errors.New("only concluded orders can be billed"))
	}
	if renter.ID() != o.UserID() || rented.ID() != o.CarID() {
		return bill.Bill{}, errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("bill for order of user %s and car %s built from user %s and car %s",
				o.UserID(), o.CarID(), renter.ID(), rented.ID()))
	}

	hours, err := b.BillableHours(*start, *end)
	if err != nil {
		return bill.Bill{}, err
	}
	return bill.NewBill(o.UserID(), renter.Address(), b.Charge(rented, hours), issuedAt)
}

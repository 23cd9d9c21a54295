package services

import (
	"ordermanagement/internal/core/domain/model/order"
)

// AvailabilityPolicy decides whether a car is in use at a reference time T.
//
// The rule is deliberately coarse and must not be "fixed" here: the rest of the
// platform relies on it. Given
//   - all orders ever placed for the car, and
//   - the orders for the car whose end date is set and strictly before T,
//
// the car is in use at T if and only if the first set is non-empty and the
// second set is empty. It does not compare intervals: any order that has not
// concluded before T blocks new bookings, and a single order concluded before T
// unblocks the car even if others are still running.
//
// Example:
//
//	all, _ := repo.GetAllByCar(ctx, carID)
//	concluded, _ := repo.GetAllByCarEndedBefore(ctx, carID, t)
//	if services.NewAvailabilityPolicy().CarIsInUse(all, concluded) {
//	    return ErrCarInUse
//	}
type AvailabilityPolicy struct{}

func NewAvailabilityPolicy() AvailabilityPolicy {
	return AvailabilityPolicy{}
}

// CarIsInUse applies the rule described on AvailabilityPolicy.
func (AvailabilityPolicy) CarIsInUse(allOrdersForCar, concludedBefore []*order.Order) bool {
	return len(allOrdersForCar) > 0 && len(concludedBefore) == 0
}

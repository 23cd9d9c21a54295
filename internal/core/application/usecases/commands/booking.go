package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"
)

// BookingOption configures the create and reserve handlers.
type BookingOption func(*bookingOptions)

type bookingOptions struct {
	serialize bool
}

// WithSerializedBookings makes create and reserve lock the car for the duration
// of the transaction before checking availability, so two concurrent bookings
// for one car cannot both pass the check. Without it two such bookings may both
// succeed.
func WithSerializedBookings(enabled bool) BookingOption {
	return func(o *bookingOptions) {
		o.serialize = enabled
	}
}

// bookingChecks holds the eligibility and availability checks shared by
// create and reserve.
type bookingChecks struct {
	users        ports.UserClient
	cars         ports.CarClient
	eligibility  services.EligibilityPolicy
	availability services.AvailabilityPolicy
	options      bookingOptions
}

func newBookingChecks(users ports.UserClient, cars ports.CarClient, opts []BookingOption) bookingChecks {
	c := bookingChecks{
		users:        users,
		cars:         cars,
		eligibility:  services.NewEligibilityPolicy(),
		availability: services.NewAvailabilityPolicy(),
	}
	for _, opt := range opts {
		opt(&c.options)
	}
	return c
}

func (c bookingChecks) checkCarIsNotEOL(ctx context.Context, carID kernel.ID) error {
	rented, err := c.cars.GetCar(ctx, carID)
	if err != nil {
		return err
	}
	return c.eligibility.CheckCar(rented)
}

func (c bookingChecks) checkUserMayRent(ctx context.Context, userID kernel.ID) error {
	renter, err := c.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	return c.eligibility.CheckUser(renter)
}

// checkCarIsFree takes the car lock when bookings are serialized and then
// applies the availability rule at t.
func (c bookingChecks) checkCarIsFree(ctx context.Context, repo ports.OrderRepository, carID kernel.ID, t time.Time) error {
	if c.options.serialize {
		if err := repo.LockCar(ctx, carID); err != nil {
			return err
		}
	}

	all, err := repo.GetAllByCar(ctx, carID)
	if err != nil {
		return err
	}
	concluded, err := repo.GetAllByCarEndedBefore(ctx, carID, t)
	if err != nil {
		return err
	}
	if c.availability.CarIsInUse(all, concluded) {
		return services.ErrCarInUse
	}
	return nil
}

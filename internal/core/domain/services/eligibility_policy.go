package services

import (
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/car"
	"ordermanagement/internal/core/domain/model/user"
)

var (
	// ErrCarUnavailable is the common cause of every refusal to rent a car.
	ErrCarUnavailable = errors.New("car is not available")

	// ErrCarIsEOL wraps ErrCarUnavailable for cars withdrawn from rental.
	ErrCarIsEOL = fmt.Errorf("%w: the requested car is EOL", ErrCarUnavailable)

	// ErrCarInUse wraps ErrCarUnavailable for cars blocked by another order.
	ErrCarInUse = fmt.Errorf("%w: the requested car is already in use", ErrCarUnavailable)

	// ErrUserIneligible is returned for inactive or banned users.
	ErrUserIneligible = errors.New("the requested user is inactive or banned")
)

// EligibilityPolicy holds the renter and car eligibility rules.
type EligibilityPolicy struct{}

func NewEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{}
}

// CheckCar returns ErrCarIsEOL for end-of-life cars.
func (EligibilityPolicy) CheckCar(c car.Car) error {
	if c.IsEOL() {
		return fmt.Errorf("%w (car %s)", ErrCarIsEOL, c.ID())
	}
	return nil
}

// CheckUser returns ErrUserIneligible unless the user is active and not banned.
func (EligibilityPolicy) CheckUser(u user.User) error {
	if !u.MayRent() {
		return fmt.Errorf("%w (user %s, active=%t, banned=%t)", ErrUserIneligible, u.ID(), u.IsActive(), u.IsBanned())
	}
	return nil
}

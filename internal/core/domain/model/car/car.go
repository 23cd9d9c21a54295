// Package car holds the read model of a rentable car as reported by the car service.
package car

import (
	"fmt"
	"math"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// Car is owned by the car service. This service only reads it.
type Car struct {
	id            kernel.ID
	eol           bool
	baseRentPrice float64
}

// NewCar builds a Car from a successful lookup. The base price is charged per
// billable hour and must be a finite, non-negative number.
func NewCar(id kernel.ID, eol bool, baseRentPrice float64) (Car, error) {
	if err := id.Validate(); err != nil {
		return Car{}, err
	}
	if math.IsNaN(baseRentPrice) || math.IsInf(baseRentPrice, 0) || baseRentPrice < 0 {
		return Car{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"baseRentPrice", baseRentPrice, 0, math.MaxFloat64,
			fmt.Errorf("car %s has an unusable price", id),
		)
	}
	return Car{id: id, eol: eol, baseRentPrice: baseRentPrice}, nil
}

func (c Car) ID() kernel.ID {
	return c.id
}

// IsEOL reports whether the car is permanently withdrawn from rental.
func (c Car) IsEOL() bool {
	return c.eol
}

// BaseRentPrice is the hourly rent.
func (c Car) BaseRentPrice() float64 {
	return c.baseRentPrice
}

package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/bill"
	"ordermanagement/internal/core/domain/model/car"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
)

// Lookup and billing clients. Every implementation must fail with an error
// wrapping errs.ErrDependencyUnavailable on transport errors, timeouts, unexpected
// statuses or undecodable payloads. None of them may return a zero value with a
// nil error: a user with active=false must mean the user service said so.
type (
	// UserClient fetches renters from the user service.
	UserClient interface {
		GetUser(ctx context.Context, id kernel.ID) (user.User, error)
	}

	// CarClient fetches cars from the car service.
	CarClient interface {
		GetCar(ctx context.Context, id kernel.ID) (car.Car, error)
	}

	// BillingClient submits bills to the accounting service.
	// orderID makes the submission idempotent: submitting twice for the same
	// order must return the bill stored the first time.
	BillingClient interface {
		SubmitBill(ctx context.Context, orderID kernel.ID, b bill.Bill) (bill.Bill, error)
	}
)

package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListAllOrdersQuery, NewListOrdersByUserQuery or NewListOrdersByCarQuery",
)

// ListOrdersQuery lists orders, optionally restricted to one user or one car.
// Results are ordered by ID. An empty result is not an error.
type ListOrdersQuery struct {
	userID *kernel.ID
	carID  *kernel.ID

	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery lists every order.
func NewListAllOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersByUserQuery lists the orders placed by one user.
func NewListOrdersByUserQuery(userID int64) (ListOrdersQuery, error) {
	id, err := kernel.NewID(userID)
	if err != nil {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	return ListOrdersQuery{userID: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrdersByCarQuery lists the orders placed for one car.
func NewListOrdersByCarQuery(carID int64) (ListOrdersQuery, error) {
	id, err := kernel.NewID(carID)
	if err != nil {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("carId", err)
	}
	return ListOrdersQuery{carID: &id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID is nil unless the query is restricted to one user.
func (q ListOrdersQuery) UserID() *kernel.ID {
	return q.userID
}

// CarID is nil unless the query is restricted to one car.
func (q ListOrdersQuery) CarID() *kernel.ID {
	return q.carID
}

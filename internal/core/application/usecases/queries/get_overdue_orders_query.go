package queries

import (
	"errors"
	"time"

	"ordermanagement/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds open rentals whose planned end date has passed:
// not canceled, no bill, and an end date strictly before the reference time.
// Only reservations carry a planned end date while open.
type GetOverdueOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(now time.Time) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{now: now, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) Now() time.Time {
	return q.now
}

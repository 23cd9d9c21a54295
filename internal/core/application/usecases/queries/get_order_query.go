package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by its identifier.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

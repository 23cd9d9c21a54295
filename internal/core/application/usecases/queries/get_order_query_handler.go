package queries

import (
	"context"

	"ordermanagement/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or an error wrapping errs.ErrObjectNotFound when
// no order has the requested ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, ordersSelect().Where(sq.Eq{"id": query.OrderID().Int64()}))
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return orders[0], nil
}

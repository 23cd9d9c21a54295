package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := ordersSelect()
	if id := query.UserID(); id != nil {
		stmt = stmt.Where(sq.Eq{"user_id": id.Int64()})
	}
	if id := query.CarID(); id != nil {
		stmt = stmt.Where(sq.Eq{"car_id": id.Int64()})
	}

	return fetchOrders(ctx, h.db, stmt)
}

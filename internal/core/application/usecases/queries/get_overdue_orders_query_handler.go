package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

func (h GetOverdueOrdersQueryHandler) Handle(ctx context.Context, query GetOverdueOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := ordersSelect().Where(sq.And{
		sq.Eq{"canceled": false},
		sq.Eq{"bill_id": nil},
		sq.NotEq{"end_date": nil},
		sq.Lt{"end_date": query.Now()},
	})

	return fetchOrders(ctx, h.db, stmt)
}

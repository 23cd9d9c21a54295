// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregate and read the orders table directly into flat
// read models.
package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// OrderResponse is the read model of one order. Nil pointers mean the column
// is NULL: no start date on a canceled order, no bill on an open one.
type OrderResponse struct {
	ID        int64
	UserID    int64
	CarID     int64
	StartDate *time.Time
	EndDate   *time.Time
	Canceled  bool
	BillID    *int64
}

// ordersSelect is the base statement of every order query. GORM expects "?"
// placeholders and rebinds them for the driver.
func ordersSelect() sq.SelectBuilder {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Question).
		Select("id", "user_id", "car_id", "start_date", "end_date", "canceled", "bill_id").
		From("orders").
		OrderBy("id")
}

func fetchOrders(ctx context.Context, db *gorm.DB, query sq.SelectBuilder) ([]OrderResponse, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var o OrderResponse
		if err = rows.Scan(
			&o.ID,
			&o.UserID,
			&o.CarID,
			&o.StartDate,
			&o.EndDate,
			&o.Canceled,
			&o.BillID,
		); err != nil {
			return nil, err
		}
		o.StartDate = utc(o.StartDate)
		o.EndDate = utc(o.EndDate)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

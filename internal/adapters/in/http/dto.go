package http

import (
	"time"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"
)

// NewOrder is the body of POST /orders.
type NewOrder struct {
	UserID    int64      `json:"userId"`
	CarID     int64      `json:"carId"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// Order is the JSON form of an order. Absent values are encoded as null.
type Order struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	CarID     int64      `json:"carId"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Canceled  bool       `json:"canceled"`
	BillID    *int64     `json:"billId"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderFromDomain(o *order.Order) Order {
	var billID *int64
	if id := o.BillID(); id != nil {
		raw := id.Int64()
		billID = &raw
	}
	return Order{
		ID:        o.ID().Int64(),
		UserID:    o.UserID().Int64(),
		CarID:     o.CarID().Int64(),
		StartDate: o.StartDate(),
		EndDate:   o.EndDate(),
		Canceled:  o.IsCanceled(),
		BillID:    billID,
	}
}

func orderFromReadModel(o queries.OrderResponse) Order {
	return Order{
		ID:        o.ID,
		UserID:    o.UserID,
		CarID:     o.CarID,
		StartDate: o.StartDate,
		EndDate:   o.EndDate,
		Canceled:  o.Canceled,
		BillID:    o.BillID,
	}
}

func ordersFromReadModel(orders []queries.OrderResponse) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}
	return response
}

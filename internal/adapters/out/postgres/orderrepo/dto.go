// Package orderrepo maps the order aggregate to the orders table and implements
// ports.OrderRepository on top of GORM.
package orderrepo

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderDTO is one row of the orders table.
// Nullable columns are pointers: a canceled order has no dates, an open order
// has no bill yet.
type OrderDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	UserID    int64      `gorm:"not null;index"`
	CarID     int64      `gorm:"not null;index"`
	StartDate *time.Time `gorm:"type:timestamptz"`
	EndDate   *time.Time `gorm:"type:timestamptz"`
	Canceled  bool       `gorm:"not null;default:false"`
	BillID    *int64
}

// TableName overrides GORM's pluralized default.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain leaves ID at zero for an order the store has not seen yet so the
// sequence assigns it.
func fromDomain(aggregate *order.Order) OrderDTO {
	var billID *int64
	if id := aggregate.BillID(); id != nil {
		raw := id.Int64()
		billID = &raw
	}

	return OrderDTO{
		ID:        aggregate.ID().Int64(),
		UserID:    aggregate.UserID().Int64(),
		CarID:     aggregate.CarID().Int64(),
		StartDate: aggregate.StartDate(),
		EndDate:   aggregate.EndDate(),
		Canceled:  aggregate.IsCanceled(),
		BillID:    billID,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder, so a row that
// breaks the order invariants is reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	carID, err := kernel.NewID(dto.CarID)
	if err != nil {
		return nil, err
	}

	var billID *kernel.ID
	if dto.BillID != nil {
		bID, billErr := kernel.NewID(*dto.BillID)
		if billErr != nil {
			return nil, billErr
		}
		billID = &bID
	}

	return order.RestoreOrder(id, userID, carID, utc(dto.StartDate), utc(dto.EndDate), dto.Canceled, billID)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
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

// Package ports defines the contracts between the order lifecycle core and its
// infrastructure: the order store and the user, car and accounting services.
package ports

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lists are ordered by order ID. An empty result is an empty slice, not an error.
type OrderRepository interface {
	// Add inserts a new order and returns it with the store-assigned ID.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update overwrites an existing order.
	// Returns errs.ErrObjectNotFound when no order has the aggregate's ID.
	Update(ctx context.Context, aggregate *order.Order) error

	// Exists reports whether an order with the ID is stored.
	Exists(ctx context.Context, id kernel.ID) (bool, error)

	// Get loads an order. Returns errs.ErrObjectNotFound for an unknown ID,
	// never a zeroed order.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll returns every order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCar returns every order ever placed for the car.
	GetAllByCar(ctx context.Context, carID kernel.ID) ([]*order.Order, error)

	// GetAllByUser returns every order placed by the user.
	GetAllByUser(ctx context.Context, userID kernel.ID) ([]*order.Order, error)

	// GetAllByCarEndedBefore returns the car's orders whose end date is set and
	// strictly before t.
	GetAllByCarEndedBefore(ctx context.Context, carID kernel.ID, t time.Time) ([]*order.Order, error)

	// LockCar serializes bookings for one car until the surrounding unit of
	// work ends. Only the serialized booking variant calls it.
	LockCar(ctx context.Context, carID kernel.ID) error
}

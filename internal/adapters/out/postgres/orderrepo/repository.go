package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and returns a copy carrying the generated ID.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if aggregate.ID().IsAssigned() {
		return nil, errs.NewValueIsInvalidError("id")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	stored, err := aggregate.AssignID(kernel.ID(dto.ID))
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

// Update overwrites every column of an existing order, including the ones
// that became NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("user_id", "car_id", "start_date", "end_date", "canceled", "bill_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Exists reports whether an order with the ID is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every order ordered by ID.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

func (r *GormOrderRepository) GetAllByCar(ctx context.Context, carID kernel.ID) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "car_id = ?", carID.Int64()).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

func (r *GormOrderRepository) GetAllByUser(ctx context.Context, userID kernel.ID) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "user_id = ?", userID.Int64()).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// GetAllByCarEndedBefore returns the car's orders with a non-NULL end date
// strictly before t.
func (r *GormOrderRepository) GetAllByCarEndedBefore(
	ctx context.Context,
	carID kernel.ID,
	t time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("car_id = ? AND end_date IS NOT NULL AND end_date < ?", carID.Int64(), t).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// LockCar takes a transaction-scoped advisory lock keyed by the car ID.
// It blocks until a concurrent holder commits or rolls back, so it must run
// inside a unit of work.
func (r *GormOrderRepository) LockCar(ctx context.Context, carID kernel.ID) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", carID.Int64()).Error
}

// Package postgres provides the GORM-based Unit of Work used by the command
// handlers, plus the embedded schema migrations.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction once Begin has been called, and on the plain
// connection before that.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	stored, err := uow.OrderRepository().Add(ctx, o)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// changes nothing, which makes the deferred call above safe.
//
// Each goroutine must use its own UnitOfWork instance.
package postgres

import (
	"context"
	"log/slog"

	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithCommitLogger makes every unit of work log the ids of the orders it
// wrote once its transaction commits.
func WithCommitLogger(logger *slog.Logger) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.logger = logger
	}
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the open transaction.
// Returns gorm.ErrInvalidTransaction if none is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil && uow.logger != nil && len(uow.trackedAggregates) > 0 {
		ids := make([]int64, 0, len(uow.trackedAggregates))
		for _, id := range uow.TrackedIDs() {
			ids = append(ids, id.Int64())
		}
		uow.logger.InfoContext(ctx, "Orders committed", "order_ids", ids)
	}
	return err
}

// Rollback discards the open transaction and forgets the tracked aggregates.
// Returns gorm.ErrInvalidTransaction if none is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns a repository bound to the open transaction, or to
// the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate registers an aggregate written during this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the IDs of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work spans one business transaction: repositories obtained from
// it run inside the same database transaction, and the aggregates they touch
// are tracked until commit.
package postgres

import (
	"context"

	"ostrack/internal/adapters/out/postgres/worklogrepo"
	"ostrack/internal/adapters/out/postgres/workorderrepo"
	"ostrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as an outbox or event publishing.
type trackedAggregate struct {
	Key       string
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the work order and
// work log repositories. Repositories obtained before Begin run directly on
// the connection; after Begin they run inside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice on the same instance is a
// no-op, not a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active, which makes deferred rollback after a successful
// commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// WorkOrderRepository returns a work order repository bound to the current
// transaction, or to the plain connection when none is active.
func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return workorderrepo.NewGormWorkOrderRepository(db, uow)
}

// WorkLogRepository returns a work log repository bound to the current
// transaction, or to the plain connection when none is active.
func (uow *GormUnitOfWork) WorkLogRepository() ports.WorkLogRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return worklogrepo.NewGormWorkLogRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repositories call this when they persist changes.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The Unit of Work maintains the set of aggregates affected by
// a business transaction and coordinates writing out changes atomically.
//
// Key Features:
//   - Transaction management across the case and quality-check repositories
//   - Aggregate tracking for post-commit processing
//   - Proper isolation between concurrent operations
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.CaseRepository().Add(ctx, newCase); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Status changes additionally use compare-and-swap at the repository
//     level, and case-number allocation relies on the unique index, so
//     lost updates surface as errors rather than silent overwrites
package postgres

import (
	"context"

	"casetrack/internal/adapters/out/postgres/caserepo"
	"casetrack/internal/adapters/out/postgres/qualitycheckrepo"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or the outbox
// pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Multiple calls to Begin on the same instance will not create nested
// transactions.
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

// Commit finalizes all changes made within the current transaction. After
// commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// rollback, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CaseRepository provides access to case persistence operations within the
// unit of work. Operations execute within the current transaction if one is
// active, otherwise on the main database connection.
func (uow *GormUnitOfWork) CaseRepository() ports.CaseRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return caserepo.NewGormCaseRepository(db, uow)
}

// QualityCheckRepository provides access to quality-check persistence
// operations within the unit of work. Operations execute within the current
// transaction if one is active, otherwise on the main database connection.
func (uow *GormUnitOfWork) QualityCheckRepository() ports.QualityCheckRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return qualitycheckrepo.NewGormQualityCheckRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations when aggregates are added or
// updated; the collected set enables post-transaction processing such as
// domain event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per
// request/command, ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the case and
// quality-check repositories. Client code manages the transaction lifecycle
// explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// CaseRepository returns a CaseRepository bound to the current
	// transaction.
	CaseRepository() CaseRepository

	// QualityCheckRepository returns a QualityCheckRepository bound to the
	// current transaction.
	QualityCheckRepository() QualityCheckRepository
}

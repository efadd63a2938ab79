// Package commands contains the write-side operations of the case lifecycle
// engine. Every command follows the same pattern: a validated command
// object, a handler coordinating domain logic, and a unit of work providing
// the per-case transactional boundary.
package commands

import (
	"context"

	"casetrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure atomicity across repository calls.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CaseRepoFactory provides access to the case repository within a
	// transaction.
	CaseRepoFactory interface {
		CaseRepository() ports.CaseRepository
	}

	// QualityCheckRepoFactory provides access to the quality-check
	// repository within a transaction.
	QualityCheckRepoFactory interface {
		QualityCheckRepository() ports.QualityCheckRepository
	}

	// CaseUoW manages transactions for case-only operations.
	CaseUoW interface {
		TxManager
		CaseRepoFactory
	}

	// CaseUoWFactory creates new case unit of work instances.
	CaseUoWFactory interface {
		Create() CaseUoW
	}

	// UoW manages transactions spanning the case and quality-check
	// aggregates, used by the quality gate commands where both must change
	// together.
	UoW interface {
		TxManager
		CaseRepoFactory
		QualityCheckRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)

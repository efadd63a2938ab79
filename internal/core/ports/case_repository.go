// Package ports defines the persistence and collaborator contracts between
// the core and the infrastructure adapters, enabling dependency inversion
// and testability.
package ports

import (
	"context"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
)

// CaseRepository defines the persistence contract for case aggregates.
type CaseRepository interface {
	// Add persists a new case aggregate. The backing store enforces a
	// uniqueness constraint on the case number; a collision surfaces as an
	// error matching errs.ErrObjectAlreadyExists so the allocator can retry
	// with the next sequence value.
	Add(ctx context.Context, aggregate *dentalcase.Case) error

	// Update persists changes to an existing case aggregate.
	Update(ctx context.Context, aggregate *dentalcase.Case) error

	// Get retrieves a case aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*dentalcase.Case, error)

	// LastSequence returns the highest persisted case-number sequence for
	// the given tenant and {LAB_CODE}{YYYYMM} prefix, or zero when no case
	// exists for that prefix yet.
	LastSequence(ctx context.Context, tenantID, numberPrefix string) (int, error)

	// CompareAndSwapStatus atomically updates the stored status from the
	// expected value to the new one. It fails with an error matching
	// errs.ErrObjectNotFound when the case does not exist or its stored
	// status no longer equals the expected value, which means a concurrent
	// transition won the race.
	CompareAndSwapStatus(ctx context.Context, id kernel.UUID, from, to dentalcase.Status) error

	// GetFirstUnassigned retrieves the oldest live case in received status
	// without an assigned technician. Used by the assignment sweep.
	GetFirstUnassigned(ctx context.Context) (*dentalcase.Case, error)

	// GetAllOverdue retrieves live, non-terminal cases whose due date lies
	// before the given time. Used by the overdue escalation sweep.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*dentalcase.Case, error)
}

// Package queries contains the read-side operations of the case lifecycle
// engine. Queries bypass the domain model and read projections straight from
// the database for efficiency.
package queries

import (
	"errors"
	"time"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

var ErrGetActiveCasesQueryIsNotConstructed = errors.New(
	"GetActiveCasesQuery must be created via NewGetActiveCasesQuery constructor",
)

// GetActiveCasesQuery retrieves a tenant's live, non-terminal cases for
// workload dashboards. Delivered, cancelled, and soft-deleted cases are
// excluded.
type GetActiveCasesQuery struct {
	tenantID string

	guard guard.ConstructorGuard
}

// NewGetActiveCasesQuery creates a query scoped to the given tenant.
func NewGetActiveCasesQuery(tenantID string) (GetActiveCasesQuery, error) {
	if tenantID == "" {
		return GetActiveCasesQuery{}, errs.NewValueIsRequiredError("tenantID")
	}

	return GetActiveCasesQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveCasesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCasesQueryIsNotConstructed)
}

// TenantID returns the owning lab's identifier.
func (q GetActiveCasesQuery) TenantID() string {
	return q.tenantID
}

// GetActiveCasesQueryResponse represents one active case row, carrying the
// fields dashboards track: where the case is in its lifecycle and who is
// working on it.
type GetActiveCasesQueryResponse struct {
	ID           kernel.UUID
	CaseNumber   string
	Status       string
	Priority     string
	Procedure    string
	DueDate      time.Time
	TechnicianID *string
}

package queries

import (
	"context"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveCasesQueryHandler retrieves a tenant's in-flight cases from the
// database, oldest first.
//
// Example:
//
//	handler := NewGetActiveCasesQueryHandler(db)
//	query, _ := NewGetActiveCasesQuery("lab-42")
//
//	activeCases, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active cases: %v", err)
//	    return err
//	}
type GetActiveCasesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveCasesQueryHandler creates a handler for active case queries.
// Requires a GORM database connection for query execution.
func NewGetActiveCasesQueryHandler(db *gorm.DB) GetActiveCasesQueryHandler {
	return GetActiveCasesQueryHandler{db: db}
}

// Handle executes the query. Returns cases in any non-terminal status for
// the tenant, excluding soft-deleted records, ordered by creation time so
// the oldest work surfaces first.
func (h GetActiveCasesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCasesQuery,
) ([]GetActiveCasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cases := make([]GetActiveCasesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			case_number,
			status,
			priority,
			procedure,
			due_date,
			technician_id
		FROM cases
		WHERE tenant_id = ?
		  AND status NOT IN (?, ?)
		  AND deleted_at IS NULL
		ORDER BY created_at
	`, query.TenantID(),
		dentalcase.Delivered.String(),
		dentalcase.Cancelled.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var caseResp GetActiveCasesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&caseResp.CaseNumber,
			&caseResp.Status,
			&caseResp.Priority,
			&caseResp.Procedure,
			&caseResp.DueDate,
			&caseResp.TechnicianID,
		)
		if err != nil {
			return nil, err
		}

		caseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		caseResp.ID = caseID

		cases = append(cases, caseResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}

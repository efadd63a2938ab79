package queries

import (
	"context"

	"casetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCaseQualityChecksQueryHandler retrieves a case's quality-check history
// from the database, oldest round first.
type GetCaseQualityChecksQueryHandler struct {
	db *gorm.DB
}

// NewGetCaseQualityChecksQueryHandler creates a handler for quality-check
// history queries. Requires a GORM database connection for query execution.
func NewGetCaseQualityChecksQueryHandler(db *gorm.DB) GetCaseQualityChecksQueryHandler {
	return GetCaseQualityChecksQueryHandler{db: db}
}

// Handle executes the query. Returns every quality check recorded for the
// case, pending and completed, ordered by creation time so rework rounds
// read in sequence.
func (h GetCaseQualityChecksQueryHandler) Handle(
	ctx context.Context,
	query GetCaseQualityChecksQuery,
) ([]GetCaseQualityChecksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	checks := make([]GetCaseQualityChecksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			inspector_id,
			pass_rate,
			outcome,
			created_at,
			completed_at
		FROM quality_checks
		WHERE case_id = ?
		ORDER BY created_at
	`, query.CaseID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var checkResp GetCaseQualityChecksQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&checkResp.InspectorID,
			&checkResp.PassRate,
			&checkResp.Outcome,
			&checkResp.CreatedAt,
			&checkResp.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		checkID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		checkResp.ID = checkID

		checks = append(checks, checkResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checks, nil
}

package queries

import (
	"errors"
	"time"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/guard"
)

var ErrGetCaseQualityChecksQueryIsNotConstructed = errors.New(
	"GetCaseQualityChecksQuery must be created via NewGetCaseQualityChecksQuery constructor",
)

// GetCaseQualityChecksQuery retrieves the quality-check history of a case,
// including checks superseded by rework rounds.
type GetCaseQualityChecksQuery struct {
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCaseQualityChecksQuery creates a query for the given case's quality
// checks.
func NewGetCaseQualityChecksQuery(caseID kernel.UUID) (GetCaseQualityChecksQuery, error) {
	if err := caseID.Validate(); err != nil {
		return GetCaseQualityChecksQuery{}, err
	}

	return GetCaseQualityChecksQuery{
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCaseQualityChecksQuery) Validate() error {
	return q.guard.Validate(ErrGetCaseQualityChecksQueryIsNotConstructed)
}

// CaseID returns the identifier of the case whose checks are requested.
func (q GetCaseQualityChecksQuery) CaseID() kernel.UUID {
	return q.caseID
}

// GetCaseQualityChecksQueryResponse represents one quality-check row of a
// case's review history.
type GetCaseQualityChecksQueryResponse struct {
	ID          kernel.UUID
	InspectorID string
	PassRate    float64
	Outcome     string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

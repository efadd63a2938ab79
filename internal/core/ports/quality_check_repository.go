package ports

import (
	"context"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/qualitycheck"
)

// QualityCheckRepository defines the persistence contract for quality-check
// aggregates.
type QualityCheckRepository interface {
	// Add persists a newly opened quality check.
	Add(ctx context.Context, aggregate *qualitycheck.QualityCheck) error

	// Update persists the completion of a quality check.
	Update(ctx context.Context, aggregate *qualitycheck.QualityCheck) error

	// Get retrieves a quality check by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*qualitycheck.QualityCheck, error)
}

// Package qualitycheckrepo provides data transfer objects and mapping
// functions for quality-check persistence.
package qualitycheckrepo

import (
	"encoding/json"
	"time"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/qualitycheck"

	"github.com/google/uuid"
)

// QualityCheckDTO represents the database structure for persisting
// quality-check aggregates. Checkpoints and per-checkpoint results are
// stored as JSON documents: they are read and written whole, never queried
// by element.
type QualityCheckDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaseID      uuid.UUID `gorm:"type:uuid;index"`
	InspectorID string
	Checkpoints string `gorm:"type:jsonb"`
	Results     string `gorm:"type:jsonb"`
	PassRate    float64
	Outcome     string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for quality-check entities.
func (QualityCheckDTO) TableName() string {
	return "quality_checks"
}

// fromDomain converts a quality-check domain aggregate to its database
// representation.
func fromDomain(aggregate *qualitycheck.QualityCheck) (QualityCheckDTO, error) {
	checkpoints, err := json.Marshal(aggregate.Checkpoints())
	if err != nil {
		return QualityCheckDTO{}, err
	}

	results, err := json.Marshal(aggregate.Results())
	if err != nil {
		return QualityCheckDTO{}, err
	}

	return QualityCheckDTO{
		ID:          aggregate.ID().Bytes(),
		CaseID:      aggregate.CaseID().Bytes(),
		InspectorID: aggregate.InspectorID(),
		Checkpoints: string(checkpoints),
		Results:     string(results),
		PassRate:    aggregate.PassRate(),
		Outcome:     aggregate.Outcome().String(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}, nil
}

// toDomain converts a database DTO to a quality-check domain aggregate using
// RestoreQualityCheck.
func toDomain(dto QualityCheckDTO) (*qualitycheck.QualityCheck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	caseID, err := kernel.UUIDFromBytes(dto.CaseID[:])
	if err != nil {
		return nil, err
	}

	var checkpoints []string
	if err = json.Unmarshal([]byte(dto.Checkpoints), &checkpoints); err != nil {
		return nil, err
	}

	var results map[string]bool
	if err = json.Unmarshal([]byte(dto.Results), &results); err != nil {
		return nil, err
	}

	outcome, err := qualitycheck.ParseOutcome(dto.Outcome)
	if err != nil {
		return nil, err
	}

	return qualitycheck.RestoreQualityCheck(
		id,
		caseID,
		dto.InspectorID,
		checkpoints,
		results,
		dto.PassRate,
		outcome,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

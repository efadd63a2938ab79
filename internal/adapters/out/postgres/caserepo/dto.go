// Package caserepo provides data transfer objects and mapping functions for
// case persistence. This package implements the repository pattern for the
// case domain aggregate, handling the conversion between domain entities and
// database representations.
package caserepo

import (
	"strconv"
	"strings"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CaseDTO represents the database structure for persisting case aggregates.
// The case number carries a unique index: the allocator relies on this
// constraint to serialize concurrent number assignment.
type CaseDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID       string    `gorm:"index"`
	CaseNumber     string    `gorm:"uniqueIndex"`
	PatientRef     string
	ProviderRef    string
	Procedure      string
	Priority       string
	Rush           bool
	ToothNumbers   string
	Instructions   string
	DueDate        time.Time `gorm:"index"`
	Status         string    `gorm:"index"`
	TechnicianID   *string
	InspectorID    *string
	ReworkRequired bool
	CreatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`
}

// TableName specifies the database table name for case entities.
// Overrides GORM's default naming convention to use "cases".
func (CaseDTO) TableName() string {
	return "cases"
}

// fromDomain converts a case domain aggregate to its database representation.
func fromDomain(aggregate *dentalcase.Case) CaseDTO {
	intake := aggregate.Intake()

	return CaseDTO{
		ID:             aggregate.ID().Bytes(),
		TenantID:       aggregate.TenantID(),
		CaseNumber:     aggregate.CaseNumber().String(),
		PatientRef:     intake.PatientRef(),
		ProviderRef:    intake.ProviderRef(),
		Procedure:      intake.Procedure().String(),
		Priority:       intake.Priority().String(),
		Rush:           intake.Rush(),
		ToothNumbers:   joinToothNumbers(intake.ToothNumbers()),
		Instructions:   intake.Instructions(),
		DueDate:        intake.DueDate(),
		Status:         aggregate.Status().String(),
		TechnicianID:   aggregate.TechnicianID(),
		InspectorID:    aggregate.InspectorID(),
		ReworkRequired: aggregate.ReworkRequired(),
		CreatedAt:      aggregate.CreatedAt(),
		DeletedAt:      aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to a case domain aggregate.
// Reconstructs the complete aggregate including lifecycle state using
// RestoreCase.
func toDomain(dto CaseDTO) (*dentalcase.Case, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	caseNumber, err := dentalcase.ParseCaseNumber(dto.CaseNumber)
	if err != nil {
		return nil, err
	}

	procedure, err := dentalcase.ParseProcedureType(dto.Procedure)
	if err != nil {
		return nil, err
	}

	priority, err := dentalcase.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := dentalcase.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	values, err := splitToothNumbers(dto.ToothNumbers)
	if err != nil {
		return nil, err
	}
	toothNumbers, err := dentalcase.NewToothNumbers(values)
	if err != nil {
		return nil, err
	}

	intake, err := dentalcase.RestoreIntake(
		dto.PatientRef,
		dto.ProviderRef,
		procedure,
		priority,
		dto.Rush,
		toothNumbers,
		dto.Instructions,
		dto.DueDate,
	)
	if err != nil {
		return nil, err
	}

	return dentalcase.RestoreCase(
		id,
		dto.TenantID,
		caseNumber,
		intake,
		dto.CreatedAt,
		status,
		dto.TechnicianID,
		dto.InspectorID,
		dto.ReworkRequired,
		dto.DeletedAt,
	)
}

func joinToothNumbers(teeth dentalcase.ToothNumbers) string {
	values := teeth.Values()
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

func splitToothNumbers(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

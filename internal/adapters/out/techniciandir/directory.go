// Package techniciandir supplies eligible technician candidates with their
// pre-computed scoring inputs. The roster lives in the technicians table and
// is maintained by the staffing system; this adapter only reads it.
package techniciandir

import (
	"context"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/technician"

	"gorm.io/gorm"
)

// TechnicianDTO represents one roster row. The four scoring inputs are
// normalized to [0, 1] upstream; workload and availability are refreshed by
// the staffing system as assignments change.
type TechnicianDTO struct {
	ID           string `gorm:"primaryKey"`
	TenantID     string `gorm:"index"`
	Active       bool
	Skill        float64
	Workload     float64
	Performance  float64
	Availability float64
}

// TableName specifies the database table name for technician roster rows.
func (TechnicianDTO) TableName() string {
	return "technicians"
}

// GormTechnicianDirectory implements TechnicianDirectory against the roster
// table.
type GormTechnicianDirectory struct {
	db *gorm.DB
}

// NewGormTechnicianDirectory creates a roster-backed technician directory.
func NewGormTechnicianDirectory(db *gorm.DB) *GormTechnicianDirectory {
	return &GormTechnicianDirectory{db: db}
}

// EligibleTechnicians returns the active technicians of the case's tenant as
// scoring candidates. An empty result is not an error here; the scorer
// decides how to treat it.
func (d *GormTechnicianDirectory) EligibleTechnicians(
	ctx context.Context,
	c *dentalcase.Case,
) ([]technician.Candidate, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var dtos []TechnicianDTO
	err := d.db.WithContext(ctx).
		Where("tenant_id = ? AND active", c.TenantID()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	candidates := make([]technician.Candidate, 0, len(dtos))
	for _, dto := range dtos {
		candidate, err := technician.NewCandidate(
			dto.ID, dto.Skill, dto.Workload, dto.Performance, dto.Availability)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

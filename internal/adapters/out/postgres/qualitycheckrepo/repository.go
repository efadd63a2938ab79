package qualitycheckrepo

import (
	"context"
	"errors"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/qualitycheck"
	"casetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQualityCheckRepository implements QualityCheckRepository using GORM.
type GormQualityCheckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQualityCheckRepository creates a new GORM quality-check repository.
func NewGormQualityCheckRepository(db *gorm.DB, tracker aggregateTracker) *GormQualityCheckRepository {
	return &GormQualityCheckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quality check to the database.
func (r *GormQualityCheckRepository) Add(ctx context.Context, aggregate *qualitycheck.QualityCheck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quality check to the database.
func (r *GormQualityCheckRepository) Update(ctx context.Context, aggregate *qualitycheck.QualityCheck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&QualityCheckDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quality check by ID.
func (r *GormQualityCheckRepository) Get(ctx context.Context, id kernel.UUID) (*qualitycheck.QualityCheck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QualityCheckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("qualityCheck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

package caserepo

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCaseRepository implements CaseRepository using GORM.
type GormCaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCaseRepository creates a new GORM case repository.
func NewGormCaseRepository(db *gorm.DB, tracker aggregateTracker) *GormCaseRepository {
	return &GormCaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new case to the database. A unique-index collision on the case
// number is reported as an ObjectAlreadyExistsError so the number allocator
// can retry. Requires the connection to be opened with TranslateError so the
// driver's duplicate-key error surfaces as gorm.ErrDuplicatedKey.
func (r *GormCaseRepository) Add(ctx context.Context, aggregate *dentalcase.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"caseNumber", aggregate.CaseNumber().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing case to the database.
func (r *GormCaseRepository) Update(ctx context.Context, aggregate *dentalcase.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CaseDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a case by ID, including soft-deleted records.
func (r *GormCaseRepository) Get(ctx context.Context, id kernel.UUID) (*dentalcase.Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("case", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LastSequence returns the highest case-number sequence persisted under the
// given tenant and prefix, or zero when the prefix is unused. The lexical
// maximum equals the numeric maximum because the sequence is fixed-width.
func (r *GormCaseRepository) LastSequence(ctx context.Context, tenantID, numberPrefix string) (int, error) {
	var dto CaseDTO
	err := r.db.WithContext(ctx).
		Select("case_number").
		Where("tenant_id = ? AND case_number LIKE ?", tenantID, numberPrefix+"%").
		Order("case_number DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	caseNumber, err := dentalcase.ParseCaseNumber(dto.CaseNumber)
	if err != nil {
		return 0, err
	}

	return caseNumber.Sequence(), nil
}

// CompareAndSwapStatus atomically moves the stored status from the expected
// value to the new one. Zero affected rows means either the case does not
// exist or a concurrent transition already changed the status; both surface
// as an ObjectNotFoundError for the caller to classify.
func (r *GormCaseRepository) CompareAndSwapStatus(
	ctx context.Context,
	id kernel.UUID,
	from, to dentalcase.Status,
) error {
	if err := errors.Join(id.Validate(), from.Validate(), to.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CaseDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("case", id.String())
	}

	return nil
}

// GetFirstUnassigned retrieves the oldest live case in received status
// without an assigned technician.
func (r *GormCaseRepository) GetFirstUnassigned(ctx context.Context) (*dentalcase.Case, error) {
	var dto CaseDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND technician_id IS NULL AND deleted_at IS NULL",
			dentalcase.Received.String()).
		Order("created_at").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("case", "first unassigned")
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves live, non-terminal cases whose due date lies before
// the given time.
func (r *GormCaseRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*dentalcase.Case, error) {
	var dtos []CaseDTO
	err := r.db.WithContext(ctx).
		Where("due_date < ? AND status NOT IN (?, ?) AND deleted_at IS NULL",
			now, dentalcase.Delivered.String(), dentalcase.Cancelled.String()).
		Order("due_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cases := make([]*dentalcase.Case, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, nil
}

package dentalcase

import (
	"errors"
	"time"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

var (
	// ErrCaseIsNotConstructed is returned when a Case instance was not
	// created through NewCase or RestoreCase.
	ErrCaseIsNotConstructed = errors.New("Case must be created via NewCase or RestoreCase")

	// ErrCaseIsDeleted is returned when mutating a soft-deleted case.
	// Tombstoned cases are retained for compliance and never change again.
	ErrCaseIsDeleted = errors.New("case is deleted")
)

// Case is the central aggregate: a unit of dental laboratory work owned by a
// tenant and tracked through production.
//
// Invariants:
//   - status is always a member of the state machine's state set; every
//     status change is validated against the transition table
//   - a case in a terminal status (delivered, cancelled) never mutates again
//     except for soft deletion
//   - the case number is immutable once assigned
//   - cases are never physically deleted; MarkDeleted sets a tombstone
//     timestamp for compliance retention
type Case struct {
	id         kernel.UUID
	tenantID   string
	caseNumber CaseNumber
	intake     Intake
	createdAt  time.Time

	status         Status
	technicianID   *string
	inspectorID    *string
	reworkRequired bool
	deletedAt      *time.Time

	guard guard.ConstructorGuard
}

// NewCase creates a case from a validated intake and an allocated case
// number. The case starts in the Received status, unassigned.
func NewCase(
	id kernel.UUID,
	tenantID string,
	caseNumber CaseNumber,
	intake Intake,
	createdAt time.Time,
) (*Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if tenantID == "" {
		return nil, errs.NewValueIsRequiredError("tenantID")
	}
	if err := caseNumber.Validate(); err != nil {
		return nil, err
	}
	if err := intake.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Case{
		id:         id,
		tenantID:   tenantID,
		caseNumber: caseNumber,
		intake:     intake,
		createdAt:  createdAt,
		status:     Received,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCase reconstructs a Case aggregate from persistent storage,
// preserving its lifecycle state. The restored case behaves identically to
// one mutated through normal domain operations.
func RestoreCase(
	id kernel.UUID,
	tenantID string,
	caseNumber CaseNumber,
	intake Intake,
	createdAt time.Time,
	status Status,
	technicianID *string,
	inspectorID *string,
	reworkRequired bool,
	deletedAt *time.Time,
) (*Case, error) {
	if err := errors.Join(
		id.Validate(),
		caseNumber.Validate(),
		intake.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if tenantID == "" {
		return nil, errs.NewValueIsRequiredError("tenantID")
	}

	return &Case{
		id:             id,
		tenantID:       tenantID,
		caseNumber:     caseNumber,
		intake:         intake,
		createdAt:      createdAt,
		status:         status,
		technicianID:   technicianID,
		inspectorID:    inspectorID,
		reworkRequired: reworkRequired,
		deletedAt:      deletedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Case instance was properly constructed.
func (c *Case) Validate() error {
	if c == nil {
		return ErrCaseIsNotConstructed
	}
	return c.guard.Validate(ErrCaseIsNotConstructed)
}

// IsEqual compares two cases by their unique identifiers.
func (c *Case) IsEqual(other *Case) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the internal unique identifier.
func (c *Case) ID() kernel.UUID {
	return c.id
}

// TenantID returns the identifier of the owning lab.
func (c *Case) TenantID() string {
	return c.tenantID
}

// CaseNumber returns the immutable external identifier.
func (c *Case) CaseNumber() CaseNumber {
	return c.caseNumber
}

// Intake returns the normalized intake payload.
func (c *Case) Intake() Intake {
	return c.intake
}

// CreatedAt returns the creation timestamp.
func (c *Case) CreatedAt() time.Time {
	return c.createdAt
}

// Status returns the current lifecycle status.
func (c *Case) Status() Status {
	return c.status
}

// TechnicianID returns the assigned technician's identifier.
// Returns nil if the case is unassigned.
func (c *Case) TechnicianID() *string {
	return c.technicianID
}

// InspectorID returns the quality inspector's identifier.
// Returns nil if no quality review was opened.
func (c *Case) InspectorID() *string {
	return c.inspectorID
}

// ReworkRequired reports whether the last quality review failed and the
// case was sent back to production.
func (c *Case) ReworkRequired() bool {
	return c.reworkRequired
}

// DeletedAt returns the tombstone timestamp, or nil for live cases.
func (c *Case) DeletedAt() *time.Time {
	return c.deletedAt
}

// IsDeleted reports whether the case carries a tombstone.
func (c *Case) IsDeleted() bool {
	return c.deletedAt != nil
}

// TransitionTo moves the case to the requested status. The transition is
// validated against the table before the stored status changes; illegal
// pairs, including any attempt to leave a terminal state, return an
// *InvalidTransitionError.
func (c *Case) TransitionTo(to Status) error {
	if err := c.checkMutable(); err != nil {
		return err
	}

	newStatus, err := c.status.Transition(to)
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// AssignTechnician sets the assigned-worker reference. Assignment touches
// identity only, never the status; it is rejected for terminal and deleted
// cases.
func (c *Case) AssignTechnician(technicianID string) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if technicianID == "" {
		return errs.NewValueIsRequiredError("technicianID")
	}

	c.technicianID = &technicianID
	return nil
}

// StartQualityReview moves the case from in_progress to quality_check and
// records the inspector. A previous rework flag is cleared: the case is
// being re-inspected.
func (c *Case) StartQualityReview(inspectorID string) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if inspectorID == "" {
		return errs.NewValueIsRequiredError("inspectorID")
	}

	newStatus, err := c.status.Transition(QualityCheck)
	if err != nil {
		return err
	}

	c.status = newStatus
	c.inspectorID = &inspectorID
	c.reworkRequired = false
	return nil
}

// PassQualityReview moves the case from quality_check to completed after a
// passing quality check.
func (c *Case) PassQualityReview() error {
	if err := c.checkMutable(); err != nil {
		return err
	}

	newStatus, err := c.status.Transition(Completed)
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// RequireRework moves the case from quality_check back to in_progress after
// a failing quality check and raises the rework flag. The flag is the rework
// signal the production workflow reacts to.
func (c *Case) RequireRework() error {
	if err := c.checkMutable(); err != nil {
		return err
	}

	newStatus, err := c.status.Transition(InProgress)
	if err != nil {
		return err
	}

	c.status = newStatus
	c.reworkRequired = true
	return nil
}

// EscalatePriority raises the case priority to urgent. Used by the overdue
// escalation sweep; rejected for terminal and deleted cases.
func (c *Case) EscalatePriority() error {
	if err := c.checkMutable(); err != nil {
		return err
	}

	c.intake.priority = PriorityUrgent
	return nil
}

// MarkDeleted sets the tombstone timestamp. Soft deletion is the only
// mutation permitted in terminal states; a second deletion is rejected.
func (c *Case) MarkDeleted(now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.deletedAt != nil {
		return ErrCaseIsDeleted
	}

	deletedAt := now
	c.deletedAt = &deletedAt
	return nil
}

// checkMutable rejects mutations of unconstructed, tombstoned, or terminal
// cases.
func (c *Case) checkMutable() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.deletedAt != nil {
		return ErrCaseIsDeleted
	}
	if c.status.IsTerminal() {
		return NewInvalidTransitionError(c.status, c.status)
	}
	return nil
}

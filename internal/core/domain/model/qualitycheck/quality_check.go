package qualitycheck

import (
	"errors"
	"fmt"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

// A check passes when passed/total >= 0.90. The boundary is inclusive:
// exactly 0.90 passes. Compared with integers to avoid float rounding.
const (
	passRateNumerator   = 9
	passRateDenominator = 10
)

var (
	// ErrQualityCheckIsNotConstructed is returned when a QualityCheck was
	// not created via NewQualityCheck or RestoreQualityCheck.
	ErrQualityCheckIsNotConstructed = errors.New(
		"QualityCheck must be created via NewQualityCheck or RestoreQualityCheck",
	)

	// ErrQualityCheckAlreadyCompleted is returned when completing a check
	// twice. Completed checks are immutable.
	ErrQualityCheckAlreadyCompleted = errors.New("quality check is already completed")
)

// Outcome is the result of a completed quality check.
type Outcome int

const (
	// OutcomePending means the check is open and awaiting results.
	OutcomePending Outcome = iota

	// OutcomePassed means the pass rate reached the 0.90 threshold.
	OutcomePassed

	// OutcomeFailed means the pass rate fell below the threshold and the
	// case returns to production for rework.
	OutcomeFailed
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomePending: "pending",
		OutcomePassed:  "passed",
		OutcomeFailed:  "failed",
	}
}

// ParseOutcome converts a wire name to an Outcome.
func ParseOutcome(raw string) (Outcome, error) {
	for outcome, name := range getOutcomeStrings() {
		if name == raw {
			return outcome, nil
		}
	}
	return OutcomePending, errs.NewValueIsInvalidErrorWithCause(
		"outcome",
		fmt.Errorf("%q is not a valid outcome", raw),
	)
}

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "pending"
}

// QualityCheck records one quality-control attempt on a case. The required
// checkpoint set is derived from the case's procedure type at creation and
// fixed from then on.
type QualityCheck struct {
	id          kernel.UUID
	caseID      kernel.UUID
	inspectorID string
	checkpoints []string
	results     map[string]bool
	passRate    float64
	outcome     Outcome
	createdAt   time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewQualityCheck opens a quality check for a case. The checkpoint set is
// looked up from the procedure-type catalog; an empty set means completion
// is automatic.
func NewQualityCheck(
	id kernel.UUID,
	caseID kernel.UUID,
	inspectorID string,
	procedure dentalcase.ProcedureType,
	createdAt time.Time,
) (*QualityCheck, error) {
	if err := errors.Join(id.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}
	if inspectorID == "" {
		return nil, errs.NewValueIsRequiredError("inspectorID")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &QualityCheck{
		id:          id,
		caseID:      caseID,
		inspectorID: inspectorID,
		checkpoints: CheckpointsFor(procedure),
		outcome:     OutcomePending,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreQualityCheck reconstructs a QualityCheck from persistent storage.
func RestoreQualityCheck(
	id kernel.UUID,
	caseID kernel.UUID,
	inspectorID string,
	checkpoints []string,
	results map[string]bool,
	passRate float64,
	outcome Outcome,
	createdAt time.Time,
	completedAt *time.Time,
) (*QualityCheck, error) {
	if err := errors.Join(id.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}
	if inspectorID == "" {
		return nil, errs.NewValueIsRequiredError("inspectorID")
	}

	restored := make([]string, len(checkpoints))
	copy(restored, checkpoints)

	var restoredResults map[string]bool
	if results != nil {
		restoredResults = make(map[string]bool, len(results))
		for name, passed := range results {
			restoredResults[name] = passed
		}
	}

	return &QualityCheck{
		id:          id,
		caseID:      caseID,
		inspectorID: inspectorID,
		checkpoints: restored,
		results:     restoredResults,
		passRate:    passRate,
		outcome:     outcome,
		createdAt:   createdAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the QualityCheck was properly constructed.
func (q *QualityCheck) Validate() error {
	if q == nil {
		return ErrQualityCheckIsNotConstructed
	}
	return q.guard.Validate(ErrQualityCheckIsNotConstructed)
}

// ID returns the check's unique identifier.
func (q *QualityCheck) ID() kernel.UUID {
	return q.id
}

// CaseID returns the inspected case's identifier.
func (q *QualityCheck) CaseID() kernel.UUID {
	return q.caseID
}

// InspectorID returns the inspector's identifier.
func (q *QualityCheck) InspectorID() string {
	return q.inspectorID
}

// Checkpoints returns a copy of the required checkpoint names, in catalog
// order.
func (q *QualityCheck) Checkpoints() []string {
	out := make([]string, len(q.checkpoints))
	copy(out, q.checkpoints)
	return out
}

// Results returns a copy of the per-checkpoint results. Nil until the check
// completes.
func (q *QualityCheck) Results() map[string]bool {
	if q.results == nil {
		return nil
	}
	out := make(map[string]bool, len(q.results))
	for name, passed := range q.results {
		out[name] = passed
	}
	return out
}

// PassRate returns passed checkpoints over total checkpoints. Zero until
// the check completes; 1.0 for an empty checkpoint set.
func (q *QualityCheck) PassRate() float64 {
	return q.passRate
}

// Outcome returns the check outcome, OutcomePending while open.
func (q *QualityCheck) Outcome() Outcome {
	return q.outcome
}

// IsCompleted reports whether the check has been completed.
func (q *QualityCheck) IsCompleted() bool {
	return q.completedAt != nil
}

// CreatedAt returns the opening timestamp.
func (q *QualityCheck) CreatedAt() time.Time {
	return q.createdAt
}

// CompletedAt returns the completion timestamp, nil while open.
func (q *QualityCheck) CompletedAt() *time.Time {
	return q.completedAt
}

// Complete records the per-checkpoint results and resolves the outcome.
//
// Every checkpoint in the stored set must have a result; a missing
// checkpoint fails with an error naming it, and a result for a name outside
// the set is rejected. The pass rate is passed/total; at least 0.90
// (inclusive) resolves to OutcomePassed, anything lower to OutcomeFailed.
// An empty checkpoint set completes automatically as passed.
//
// A check completes exactly once; it is immutable afterwards.
func (q *QualityCheck) Complete(results map[string]bool, completedAt time.Time) (Outcome, error) {
	if err := q.Validate(); err != nil {
		return OutcomePending, err
	}
	if q.completedAt != nil {
		return OutcomePending, ErrQualityCheckAlreadyCompleted
	}

	required := make(map[string]struct{}, len(q.checkpoints))
	for _, name := range q.checkpoints {
		required[name] = struct{}{}
	}
	for name := range results {
		if _, ok := required[name]; !ok {
			return OutcomePending, errs.NewValueIsInvalidErrorWithCause(
				"results",
				fmt.Errorf("%q is not a required checkpoint", name),
			)
		}
	}

	passed := 0
	recorded := make(map[string]bool, len(q.checkpoints))
	for _, name := range q.checkpoints {
		result, ok := results[name]
		if !ok {
			return OutcomePending, errs.NewValueIsRequiredErrorWithCause(
				"results",
				fmt.Errorf("checkpoint %q has no result", name),
			)
		}
		recorded[name] = result
		if result {
			passed++
		}
	}

	total := len(q.checkpoints)
	outcome := OutcomeFailed
	switch {
	case total == 0:
		// No required checkpoints for this procedure: automatic pass.
		q.passRate = 1.0
		outcome = OutcomePassed
	case passed*passRateDenominator >= total*passRateNumerator:
		q.passRate = float64(passed) / float64(total)
		outcome = OutcomePassed
	default:
		q.passRate = float64(passed) / float64(total)
	}

	q.results = recorded
	q.outcome = outcome
	completed := completedAt
	q.completedAt = &completed
	return outcome, nil
}

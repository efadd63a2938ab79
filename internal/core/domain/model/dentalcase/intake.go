package dentalcase

import (
	"errors"
	"fmt"
	"time"

	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

// rushLeadFloor is the hard minimum lead time for rush orders, in business
// days, after the regular minimum is halved.
const rushLeadFloor = 1

// ErrIntakeIsNotConstructed is returned when an Intake was not created via
// NewIntake or RestoreIntake.
var ErrIntakeIsNotConstructed = errors.New(
	"Intake must be created via NewIntake or RestoreIntake",
)

// IntakeRequest carries the raw fields of a new-case request before
// validation. Field values come straight from the transport layer.
type IntakeRequest struct {
	PatientRef   string
	ProviderRef  string
	Procedure    string
	Priority     string
	Rush         bool
	ToothNumbers []int
	Instructions string
	DueDate      time.Time
}

// Intake is the normalized, validated payload of a new-case request, ready
// for persistence. It never mutates shared state; NewIntake is safe to call
// concurrently without coordination.
type Intake struct {
	patientRef   string
	providerRef  string
	procedure    ProcedureType
	priority     Priority
	rush         bool
	toothNumbers ToothNumbers
	instructions string
	dueDate      time.Time

	guard guard.ConstructorGuard
}

// NewIntake validates a new-case request and returns the normalized intake.
//
// Rules applied, in order:
//   - required fields: patientRef, providerRef, procedure, dueDate,
//     toothNumbers; a missing field fails with an error naming it
//   - procedure must belong to the catalog (case-insensitive, normalized
//     to lowercase)
//   - priority defaults to normal when empty
//   - tooth numbers are validated and normalized per NewToothNumbers
//   - the due date must leave at least the procedure's minimum lead time in
//     business days (Mon-Fri, no holiday calendar) counted from now; a rush
//     order halves the minimum (floored) with a hard floor of one day
//
// The clock is supplied by the caller so the rule stays pure and testable.
func NewIntake(request IntakeRequest, now time.Time) (Intake, error) {
	if request.PatientRef == "" {
		return Intake{}, errs.NewValueIsRequiredError("patientRef")
	}
	if request.ProviderRef == "" {
		return Intake{}, errs.NewValueIsRequiredError("providerRef")
	}
	if request.Procedure == "" {
		return Intake{}, errs.NewValueIsRequiredError("procedure")
	}
	if request.DueDate.IsZero() {
		return Intake{}, errs.NewValueIsRequiredError("dueDate")
	}
	if len(request.ToothNumbers) == 0 {
		return Intake{}, errs.NewValueIsRequiredError("toothNumbers")
	}

	procedure, err := ParseProcedureType(request.Procedure)
	if err != nil {
		return Intake{}, err
	}

	priority, err := ParsePriority(request.Priority)
	if err != nil {
		return Intake{}, err
	}

	toothNumbers, err := NewToothNumbers(request.ToothNumbers)
	if err != nil {
		return Intake{}, err
	}

	minDays := procedure.MinLeadDays()
	if request.Rush {
		minDays /= 2
		if minDays < rushLeadFloor {
			minDays = rushLeadFloor
		}
	}

	available := BusinessDaysBetween(now, request.DueDate)
	if available < minDays {
		return Intake{}, errs.NewValueIsInvalidErrorWithCause(
			"dueDate",
			fmt.Errorf("%s requires a minimum lead time of %d business days, got %d",
				procedure, minDays, available),
		)
	}

	return Intake{
		patientRef:   request.PatientRef,
		providerRef:  request.ProviderRef,
		procedure:    procedure,
		priority:     priority,
		rush:         request.Rush,
		toothNumbers: toothNumbers,
		instructions: request.Instructions,
		dueDate:      request.DueDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreIntake rebuilds an Intake from already-normalized persisted fields.
// Unlike NewIntake it does not re-apply the clock-relative lead-time rule,
// so cases remain loadable after their intake window has passed.
func RestoreIntake(
	patientRef string,
	providerRef string,
	procedure ProcedureType,
	priority Priority,
	rush bool,
	toothNumbers ToothNumbers,
	instructions string,
	dueDate time.Time,
) (Intake, error) {
	if patientRef == "" {
		return Intake{}, errs.NewValueIsRequiredError("patientRef")
	}
	if providerRef == "" {
		return Intake{}, errs.NewValueIsRequiredError("providerRef")
	}
	if dueDate.IsZero() {
		return Intake{}, errs.NewValueIsRequiredError("dueDate")
	}

	if err := errors.Join(
		procedure.Validate(),
		priority.Validate(),
		toothNumbers.Validate(),
	); err != nil {
		return Intake{}, err
	}

	return Intake{
		patientRef:   patientRef,
		providerRef:  providerRef,
		procedure:    procedure,
		priority:     priority,
		rush:         rush,
		toothNumbers: toothNumbers,
		instructions: instructions,
		dueDate:      dueDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the intake was created via a constructor.
func (i Intake) Validate() error {
	return i.guard.Validate(ErrIntakeIsNotConstructed)
}

// PatientRef returns the opaque patient reference.
func (i Intake) PatientRef() string {
	return i.patientRef
}

// ProviderRef returns the opaque ordering-provider reference.
func (i Intake) ProviderRef() string {
	return i.providerRef
}

// Procedure returns the normalized procedure type.
func (i Intake) Procedure() ProcedureType {
	return i.procedure
}

// Priority returns the resolved priority.
func (i Intake) Priority() Priority {
	return i.priority
}

// Rush reports whether the case is a rush order.
func (i Intake) Rush() bool {
	return i.rush
}

// ToothNumbers returns the normalized tooth set.
func (i Intake) ToothNumbers() ToothNumbers {
	return i.toothNumbers
}

// Instructions returns the free-text instructions. The engine treats them
// as an opaque sensitive payload.
func (i Intake) Instructions() string {
	return i.instructions
}

// DueDate returns the requested due date.
func (i Intake) DueDate() time.Time {
	return i.dueDate
}

// BusinessDaysBetween counts the business days (Mon-Fri, no holiday
// calendar) after from's calendar date up to and including to's calendar
// date, in UTC. A due date on the same or an earlier day yields zero.
func BusinessDaysBetween(from, to time.Time) int {
	fromDate := truncateToDate(from)
	toDate := truncateToDate(to)

	days := 0
	for d := fromDate.AddDate(0, 0, 1); !d.After(toDate); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

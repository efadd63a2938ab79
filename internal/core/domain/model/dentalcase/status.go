package dentalcase

import (
	"errors"
	"fmt"

	"casetrack/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
// Callers classify rejected transitions with errors.Is against this value.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a case. It implements a state
// machine with a closed transition table; any pair not listed in the table
// is illegal and is rejected, never silently coerced.
//
// State transitions:
//
//	received      -> in_progress, cancelled
//	in_progress   -> quality_check, returned, cancelled
//	quality_check -> completed, in_progress, returned
//	completed     -> shipped, returned
//	shipped       -> delivered, returned
//	delivered     -> (terminal)
//	returned      -> in_progress, cancelled
//	cancelled     -> (terminal)
//
// Received is the sole initial state. Delivered and Cancelled are terminal:
// they have no outgoing transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when a case enters the lab.
	Received

	// InProgress indicates production work on the case has started.
	InProgress

	// QualityCheck indicates the case is under quality inspection.
	QualityCheck

	// Completed indicates the case passed quality control.
	Completed

	// Shipped indicates the case left the lab for the provider.
	Shipped

	// Delivered indicates the provider received the case. Terminal.
	Delivered

	// Returned indicates the case came back for adjustment or remake.
	Returned

	// Cancelled indicates the case was withdrawn. Terminal.
	Cancelled
)

// getStatusStrings returns the map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Received:     "received",
		InProgress:   "in_progress",
		QualityCheck: "quality_check",
		Completed:    "completed",
		Shipped:      "shipped",
		Delivered:    "delivered",
		Returned:     "returned",
		Cancelled:    "cancelled",
	}
}

// getTransitionTable returns the authoritative transition table.
// The table is a pure configuration value; callers never mutate it.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Received:     {InProgress, Cancelled},
		InProgress:   {QualityCheck, Returned, Cancelled},
		QualityCheck: {Completed, InProgress, Returned},
		Completed:    {Shipped, Returned},
		Shipped:      {Delivered, Returned},
		Delivered:    {},
		Returned:     {InProgress, Cancelled},
		Cancelled:    {},
	}
}

// ParseStatus converts a wire name to a Status.
// Returns a ValueIsInvalidError for names outside the state set.
func ParseStatus(raw string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks the Status is a member of the state set.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := getTransitionTable()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the (s, to) pair is present in the
// transition table. Any pair not listed is illegal, including every pair
// where s is terminal.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NextStates returns the set of states reachable from s.
// The returned slice is a copy; mutating it does not affect the table.
func (s Status) NextStates() []Status {
	next := getTransitionTable()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// Transition validates the (s, to) pair against the table and returns the
// new status. Illegal pairs return an *InvalidTransitionError; the caller's
// stored status must not change in that case.
func (s Status) Transition(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, NewInvalidTransitionError(s, to)
	}
	return to, nil
}

// InvalidTransitionError reports a status transition rejected by the table,
// including any attempted mutation of a case in a terminal status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an error for the rejected (from, to) pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	if e.From.IsTerminal() && e.From == e.To {
		return fmt.Sprintf("%s: %s is terminal", ErrInvalidTransition, e.From)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

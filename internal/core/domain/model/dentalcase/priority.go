package dentalcase

import (
	"fmt"
	"strings"

	"casetrack/internal/pkg/errs"
)

// Priority classifies how urgently a case should be scheduled.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is for cases with generous scheduling slack.
	PriorityLow

	// PriorityNormal is the default priority for new cases.
	PriorityNormal

	// PriorityHigh is for cases that should be scheduled ahead of normal work.
	PriorityHigh

	// PriorityUrgent is the top priority, also applied by overdue escalation.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityLow:     "low",
		PriorityNormal:  "normal",
		PriorityHigh:    "high",
		PriorityUrgent:  "urgent",
	}
}

// ParsePriority converts a wire name to a Priority. The comparison is
// case-insensitive; an empty string resolves to PriorityNormal.
func ParsePriority(raw string) (Priority, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return PriorityNormal, nil
	}

	for priority, name := range getPriorityStrings() {
		if priority != PriorityUnknown && name == normalized {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid priority", raw),
	)
}

// Validate checks the Priority is a member of the closed set.
func (p Priority) Validate() error {
	if p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%d is not a valid priority", int(p)),
		)
	}
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority",
			fmt.Errorf("%d is not a valid priority", int(p)),
		)
	}
	return nil
}

// String returns the wire name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

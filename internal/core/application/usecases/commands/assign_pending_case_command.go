package commands

import (
	"errors"

	"casetrack/internal/pkg/guard"
)

var ErrAssignPendingCaseCommandIsNotConstructed = errors.New(
	"AssignPendingCaseCommand must be created via NewAssignPendingCaseCommand constructor",
)

// AssignPendingCaseCommand triggers the assignment of the oldest unassigned
// case to the best available technician. Used by the background assignment
// sweep; a single invocation assigns at most one case.
type AssignPendingCaseCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingCaseCommand creates a new command to trigger pending-case
// assignment. This is a parameterless command.
func NewAssignPendingCaseCommand() AssignPendingCaseCommand {
	return AssignPendingCaseCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignPendingCaseCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingCaseCommandIsNotConstructed,
	)
}

package commands

import (
	"errors"

	"casetrack/internal/pkg/guard"
)

var ErrEscalateOverdueCasesCommandIsNotConstructed = errors.New(
	"EscalateOverdueCasesCommand must be created via NewEscalateOverdueCasesCommand constructor",
)

// EscalateOverdueCasesCommand triggers a sweep that raises the priority of
// every live, non-terminal case whose due date has passed. Used by the
// hourly escalation job.
type EscalateOverdueCasesCommand struct {
	guard guard.ConstructorGuard
}

// NewEscalateOverdueCasesCommand creates a new command to trigger the
// overdue escalation sweep. This is a parameterless command.
func NewEscalateOverdueCasesCommand() EscalateOverdueCasesCommand {
	return EscalateOverdueCasesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *EscalateOverdueCasesCommand) Validate() error {
	return c.guard.Validate(
		ErrEscalateOverdueCasesCommandIsNotConstructed,
	)
}

package commands

import (
	"errors"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/guard"
)

var ErrAssignTechnicianCommandIsNotConstructed = errors.New(
	"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
)

// AssignTechnicianCommand represents a request to pick the best eligible
// technician for a specific case.
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to assign a technician to the
// given case.
func NewAssignTechnicianCommand(caseID kernel.UUID) (AssignTechnicianCommand, error) {
	command := AssignTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCaseID(caseID); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to assign.
func (c AssignTechnicianCommand) CaseID() kernel.UUID {
	return c.caseID
}

func (c *AssignTechnicianCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}

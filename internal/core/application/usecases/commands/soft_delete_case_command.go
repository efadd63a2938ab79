package commands

import (
	"errors"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/guard"
)

var ErrSoftDeleteCaseCommandIsNotConstructed = errors.New(
	"SoftDeleteCaseCommand must be created via NewSoftDeleteCaseCommand constructor",
)

// SoftDeleteCaseCommand represents a request to tombstone a case. The record
// stays in storage for audit purposes but disappears from all read paths.
type SoftDeleteCaseCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSoftDeleteCaseCommand creates a command to soft-delete the given case.
func NewSoftDeleteCaseCommand(caseID kernel.UUID) (SoftDeleteCaseCommand, error) {
	command := SoftDeleteCaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCaseID(caseID); err != nil {
		return SoftDeleteCaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SoftDeleteCaseCommand) Validate() error {
	return c.guard.Validate(ErrSoftDeleteCaseCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to delete.
func (c SoftDeleteCaseCommand) CaseID() kernel.UUID {
	return c.caseID
}

func (c *SoftDeleteCaseCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}

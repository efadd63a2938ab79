package commands

import (
	"errors"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/guard"
)

var ErrTransitionCaseStatusCommandIsNotConstructed = errors.New(
	"TransitionCaseStatusCommand must be created via NewTransitionCaseStatusCommand constructor",
)

// TransitionCaseStatusCommand represents a request to move a case to a new
// lifecycle status. The target is parsed eagerly so an unknown status name
// fails at construction, before any transaction starts.
type TransitionCaseStatusCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID
	target dentalcase.Status

	guard guard.ConstructorGuard
}

// NewTransitionCaseStatusCommand creates a command to transition a case.
// The target status is given by its wire name ("in_progress", "shipped", ...);
// an unknown name fails with an error naming the value.
func NewTransitionCaseStatusCommand(caseID kernel.UUID, target string) (TransitionCaseStatusCommand, error) {
	command := TransitionCaseStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaseID(caseID),
		command.setTarget(target),
	); err != nil {
		return TransitionCaseStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionCaseStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionCaseStatusCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to transition.
func (c TransitionCaseStatusCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Target returns the requested destination status.
func (c TransitionCaseStatusCommand) Target() dentalcase.Status {
	return c.target
}

func (c *TransitionCaseStatusCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}

func (c *TransitionCaseStatusCommand) setTarget(target string) error {
	parsed, err := dentalcase.ParseStatus(target)
	if err != nil {
		return err
	}

	c.target = parsed
	return nil
}

package commands

import (
	"errors"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

var ErrOpenQualityCheckCommandIsNotConstructed = errors.New(
	"OpenQualityCheckCommand must be created via NewOpenQualityCheckCommand constructor",
)

// OpenQualityCheckCommand represents a request to start a quality review for
// a case that finished fabrication.
type OpenQualityCheckCommand struct { //nolint:recvcheck //using for validation
	caseID      kernel.UUID
	inspectorID string

	guard guard.ConstructorGuard
}

// NewOpenQualityCheckCommand creates a command to open a quality check for
// the given case, assigned to the given inspector.
func NewOpenQualityCheckCommand(caseID kernel.UUID, inspectorID string) (OpenQualityCheckCommand, error) {
	command := OpenQualityCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaseID(caseID),
		command.setInspectorID(inspectorID),
	); err != nil {
		return OpenQualityCheckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenQualityCheckCommand) Validate() error {
	return c.guard.Validate(ErrOpenQualityCheckCommandIsNotConstructed)
}

// CaseID returns the identifier of the case under review.
func (c OpenQualityCheckCommand) CaseID() kernel.UUID {
	return c.caseID
}

// InspectorID returns the inspector responsible for the review.
func (c OpenQualityCheckCommand) InspectorID() string {
	return c.inspectorID
}

func (c *OpenQualityCheckCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}

	c.caseID = caseID
	return nil
}

func (c *OpenQualityCheckCommand) setInspectorID(inspectorID string) error {
	if inspectorID == "" {
		return errs.NewValueIsRequiredError("inspectorID")
	}

	c.inspectorID = inspectorID
	return nil
}

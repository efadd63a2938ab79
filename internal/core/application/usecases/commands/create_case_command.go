package commands

import (
	"errors"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/pkg/errs"
	"casetrack/internal/pkg/guard"
)

var ErrCreateCaseCommandIsNotConstructed = errors.New(
	"CreateCaseCommand must be created via NewCreateCaseCommand constructor",
)

// CreateCaseCommand represents a request to register a new case for a
// tenant. It carries the raw intake fields; business-rule validation
// (procedure catalog, tooth numbering, lead time) happens in the domain
// model when the handler builds the intake.
//
// Example:
//
//	cmd, err := NewCreateCaseCommand("lab-42", dentalcase.IntakeRequest{
//	    PatientRef:   "patient-17",
//	    ProviderRef:  "dr-lopez",
//	    Procedure:    "crown",
//	    ToothNumbers: []int{3},
//	    DueDate:      due,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid case data: %w", err)
//	}
type CreateCaseCommand struct { //nolint:recvcheck //using for validation
	tenantID string
	request  dentalcase.IntakeRequest

	guard guard.ConstructorGuard
}

// NewCreateCaseCommand creates a command to register a new case.
// It checks presence of the required fields (tenant, patient, provider,
// procedure, due date, tooth numbers); a missing field fails with an error
// naming it.
func NewCreateCaseCommand(tenantID string, request dentalcase.IntakeRequest) (CreateCaseCommand, error) {
	command := CreateCaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTenantID(tenantID),
		command.setRequest(request),
	); err != nil {
		return CreateCaseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCaseCommand) Validate() error {
	return c.guard.Validate(ErrCreateCaseCommandIsNotConstructed)
}

// TenantID returns the owning lab's identifier.
func (c CreateCaseCommand) TenantID() string {
	return c.tenantID
}

// IntakeRequest returns the raw intake fields.
func (c CreateCaseCommand) IntakeRequest() dentalcase.IntakeRequest {
	return c.request
}

func (c *CreateCaseCommand) setTenantID(tenantID string) error {
	if tenantID == "" {
		return errs.NewValueIsRequiredError("tenantID")
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateCaseCommand) setRequest(request dentalcase.IntakeRequest) error {
	if request.PatientRef == "" {
		return errs.NewValueIsRequiredError("patientRef")
	}
	if request.ProviderRef == "" {
		return errs.NewValueIsRequiredError("providerRef")
	}
	if request.Procedure == "" {
		return errs.NewValueIsRequiredError("procedure")
	}
	if request.DueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}
	if len(request.ToothNumbers) == 0 {
		return errs.NewValueIsRequiredError("toothNumbers")
	}

	c.request = request
	return nil
}

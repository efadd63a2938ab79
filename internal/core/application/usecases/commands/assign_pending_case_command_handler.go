package commands

import (
	"context"
	"errors"

	"casetrack/internal/core/domain/services"
	"casetrack/internal/core/ports"
	"casetrack/internal/pkg/errs"
)

// ErrNoPendingCaseFound is returned when no unassigned case is waiting.
// The assignment sweep treats this as a normal idle tick.
var ErrNoPendingCaseFound = errors.New("no pending case found")

// AssignPendingCaseCommandHandler orchestrates the background assignment
// sweep. Finds the oldest unassigned case and matches it with the
// highest-scoring eligible technician.
//
// Example:
//
//	handler := NewAssignPendingCaseCommandHandler(uowFactory, directory)
//	cmd := NewAssignPendingCaseCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingCaseFound):
//	    log.Println("No cases waiting for assignment")
//	case errors.Is(err, services.ErrNoEligibleTechnicians):
//	    log.Println("All technicians are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPendingCaseCommandHandler struct {
	uowFactory          CaseUoWFactory
	technicianDirectory ports.TechnicianDirectory
}

// NewAssignPendingCaseCommandHandler creates a handler for the pending-case
// assignment sweep.
func NewAssignPendingCaseCommandHandler(
	uowFactory CaseUoWFactory,
	technicianDirectory ports.TechnicianDirectory,
) AssignPendingCaseCommandHandler {
	return AssignPendingCaseCommandHandler{
		uowFactory:          uowFactory,
		technicianDirectory: technicianDirectory,
	}
}

// Handle processes the sweep command. Retrieves the oldest unassigned case,
// scores the eligible technicians, and records the winner within a single
// transaction. Returns ErrNoPendingCaseFound when nothing is waiting and
// services.ErrNoEligibleTechnicians when no candidate qualifies.
func (h AssignPendingCaseCommandHandler) Handle(ctx context.Context, command AssignPendingCaseCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caseRepo := uow.CaseRepository()

	pendingCase, err := caseRepo.GetFirstUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingCaseFound
	}
	if err != nil {
		return err
	}

	candidates, err := h.technicianDirectory.EligibleTechnicians(ctx, pendingCase)
	if err != nil {
		return err
	}

	if _, err = services.NewAssignmentScorer().Assign(pendingCase, candidates); err != nil {
		return err
	}

	if err = caseRepo.Update(ctx, pendingCase); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

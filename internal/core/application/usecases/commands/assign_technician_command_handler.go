package commands

import (
	"context"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/services"
	"casetrack/internal/core/ports"
)

// AssignTechnicianCommandHandler selects the highest-scoring eligible
// technician for a case and records the assignment.
//
// Eligibility filtering and score inputs come from the technician directory;
// the scoring itself lives in the domain service so the weights and
// tie-break stay in one place. An empty candidate set fails with
// services.ErrNoEligibleTechnicians and leaves the case unassigned.
type AssignTechnicianCommandHandler struct {
	uowFactory          CaseUoWFactory
	technicianDirectory ports.TechnicianDirectory
}

// NewAssignTechnicianCommandHandler creates a handler for technician
// assignment operations.
func NewAssignTechnicianCommandHandler(
	uowFactory CaseUoWFactory,
	technicianDirectory ports.TechnicianDirectory,
) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory:          uowFactory,
		technicianDirectory: technicianDirectory,
	}
}

// Handle processes the assignment command. Returns the updated case and the
// full score ranking with the selected candidate first, for audit.
func (h AssignTechnicianCommandHandler) Handle(
	ctx context.Context,
	command AssignTechnicianCommand,
) (*dentalcase.Case, []services.ScoreBreakdown, error) {
	if err := command.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caseRepo := uow.CaseRepository()

	trackedCase, err := caseRepo.Get(ctx, command.CaseID())
	if err != nil {
		return nil, nil, err
	}

	candidates, err := h.technicianDirectory.EligibleTechnicians(ctx, trackedCase)
	if err != nil {
		return nil, nil, err
	}

	ranking, err := services.NewAssignmentScorer().Assign(trackedCase, candidates)
	if err != nil {
		return nil, nil, err
	}

	if err = caseRepo.Update(ctx, trackedCase); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return trackedCase, ranking, nil
}

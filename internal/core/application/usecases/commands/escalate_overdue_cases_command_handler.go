package commands

import (
	"context"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
)

// EscalateOverdueCasesCommandHandler raises overdue cases to urgent
// priority. Cases already at urgent are left alone, so repeated sweeps are
// idempotent. All escalations in one sweep commit together.
type EscalateOverdueCasesCommandHandler struct {
	uowFactory CaseUoWFactory
}

// NewEscalateOverdueCasesCommandHandler creates a handler for the overdue
// escalation sweep.
func NewEscalateOverdueCasesCommandHandler(uowFactory CaseUoWFactory) EscalateOverdueCasesCommandHandler {
	return EscalateOverdueCasesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns the number of cases
// escalated.
func (h EscalateOverdueCasesCommandHandler) Handle(
	ctx context.Context,
	command EscalateOverdueCasesCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caseRepo := uow.CaseRepository()

	overdueCases, err := caseRepo.GetAllOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	escalated := 0
	for _, overdueCase := range overdueCases {
		if overdueCase.Intake().Priority() == dentalcase.PriorityUrgent {
			continue
		}

		if err = overdueCase.EscalatePriority(); err != nil {
			return 0, err
		}

		if err = caseRepo.Update(ctx, overdueCase); err != nil {
			return 0, err
		}
		escalated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return escalated, nil
}

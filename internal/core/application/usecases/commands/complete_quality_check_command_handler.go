package commands

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/core/domain/model/qualitycheck"
	"casetrack/internal/pkg/errs"
)

// CompleteQualityCheckCommandHandler resolves an open quality check and
// routes the case accordingly: a pass rate of at least 90% completes the
// case, anything lower sends it back to in_progress with rework flagged.
// The check and the case change together in one transaction.
type CompleteQualityCheckCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteQualityCheckCommandHandler creates a handler for completing
// quality checks.
func NewCompleteQualityCheckCommandHandler(uowFactory UoWFactory) CompleteQualityCheckCommandHandler {
	return CompleteQualityCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the completed quality check.
func (h CompleteQualityCheckCommandHandler) Handle(
	ctx context.Context,
	command CompleteQualityCheckCommand,
) (*qualitycheck.QualityCheck, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caseRepo := uow.CaseRepository()
	qualityCheckRepo := uow.QualityCheckRepository()

	check, err := qualityCheckRepo.Get(ctx, command.QualityCheckID())
	if err != nil {
		return nil, err
	}

	trackedCase, err := caseRepo.Get(ctx, check.CaseID())
	if err != nil {
		return nil, err
	}

	outcome, err := check.Complete(command.Results(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	from := trackedCase.Status()
	if outcome == qualitycheck.OutcomePassed {
		err = trackedCase.PassQualityReview()
	} else {
		err = trackedCase.RequireRework()
	}
	if err != nil {
		return nil, err
	}

	err = caseRepo.CompareAndSwapStatus(ctx, trackedCase.ID(), from, trackedCase.Status())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrCaseConcurrentlyModified
	}
	if err != nil {
		return nil, err
	}

	if err = caseRepo.Update(ctx, trackedCase); err != nil {
		return nil, err
	}

	if err = qualityCheckRepo.Update(ctx, check); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return check, nil
}

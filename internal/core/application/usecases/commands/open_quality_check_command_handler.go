package commands

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/domain/model/qualitycheck"
	"casetrack/internal/pkg/errs"
)

// OpenQualityCheckCommandHandler starts the quality gate for a case.
//
// The case moves from in_progress to quality_check and a fresh QualityCheck
// record is opened with the checkpoint set derived from the case's procedure
// type. Both changes commit in one transaction; the status write is a
// compare-and-swap so a concurrent transition cannot be silently overwritten.
type OpenQualityCheckCommandHandler struct {
	uowFactory UoWFactory
}

// NewOpenQualityCheckCommandHandler creates a handler for opening quality
// checks.
func NewOpenQualityCheckCommandHandler(uowFactory UoWFactory) OpenQualityCheckCommandHandler {
	return OpenQualityCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the opened quality check.
func (h OpenQualityCheckCommandHandler) Handle(
	ctx context.Context,
	command OpenQualityCheckCommand,
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

	trackedCase, err := caseRepo.Get(ctx, command.CaseID())
	if err != nil {
		return nil, err
	}

	from := trackedCase.Status()
	if err = trackedCase.StartQualityReview(command.InspectorID()); err != nil {
		return nil, err
	}

	check, err := qualitycheck.NewQualityCheck(
		kernel.NewUUID(),
		trackedCase.ID(),
		command.InspectorID(),
		trackedCase.Intake().Procedure(),
		time.Now().UTC(),
	)
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

	if err = qualityCheckRepo.Add(ctx, check); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return check, nil
}

package commands

import (
	"context"
	"errors"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/pkg/errs"
)

// ErrCaseConcurrentlyModified is returned when a concurrent transition
// changed the case's status between read and write. The caller should
// re-read the case and decide whether the transition still applies.
var ErrCaseConcurrentlyModified = errors.New("case was concurrently modified")

// TransitionCaseStatusCommandHandler moves a case through its lifecycle.
// The domain model decides whether the transition is legal; the repository
// enforces it atomically with a compare-and-swap on the stored status, so
// two racing transitions cannot both win.
type TransitionCaseStatusCommandHandler struct {
	uowFactory CaseUoWFactory
}

// NewTransitionCaseStatusCommandHandler creates a handler for status
// transitions.
func NewTransitionCaseStatusCommandHandler(uowFactory CaseUoWFactory) TransitionCaseStatusCommandHandler {
	return TransitionCaseStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the updated case.
// An illegal transition fails with dentalcase.ErrInvalidTransition; a lost
// race with a concurrent transition fails with ErrCaseConcurrentlyModified.
func (h TransitionCaseStatusCommandHandler) Handle(
	ctx context.Context,
	command TransitionCaseStatusCommand,
) (*dentalcase.Case, error) {
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

	trackedCase, err := caseRepo.Get(ctx, command.CaseID())
	if err != nil {
		return nil, err
	}

	from := trackedCase.Status()
	if err = trackedCase.TransitionTo(command.Target()); err != nil {
		return nil, err
	}

	err = caseRepo.CompareAndSwapStatus(ctx, trackedCase.ID(), from, command.Target())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrCaseConcurrentlyModified
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return trackedCase, nil
}

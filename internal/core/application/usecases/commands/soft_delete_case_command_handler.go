package commands

import (
	"context"
	"time"
)

// SoftDeleteCaseCommandHandler tombstones a case. Deletion is permitted in
// any status, including terminal ones; repeating it fails with
// dentalcase.ErrCaseIsDeleted.
type SoftDeleteCaseCommandHandler struct {
	uowFactory CaseUoWFactory
}

// NewSoftDeleteCaseCommandHandler creates a handler for soft deletions.
func NewSoftDeleteCaseCommandHandler(uowFactory CaseUoWFactory) SoftDeleteCaseCommandHandler {
	return SoftDeleteCaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the soft-delete command.
func (h SoftDeleteCaseCommandHandler) Handle(ctx context.Context, command SoftDeleteCaseCommand) error {
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

	trackedCase, err := caseRepo.Get(ctx, command.CaseID())
	if err != nil {
		return err
	}

	if err = trackedCase.MarkDeleted(time.Now().UTC()); err != nil {
		return err
	}

	if err = caseRepo.Update(ctx, trackedCase); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

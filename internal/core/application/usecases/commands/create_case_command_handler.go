package commands

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/core/ports"
	"casetrack/internal/pkg/errs"
)

// maxCaseNumberAttempts bounds the allocation retry loop. Concurrent
// creations for the same (tenant, month) can propose the same sequence;
// the uniqueness constraint rejects the loser, which retries with the next
// value. Exhausting the budget is a transient failure the caller may retry.
const maxCaseNumberAttempts = 3

// ErrCaseNumberAllocationFailed is returned when the case-number retry
// budget is exhausted under contention. Transient: the whole creation
// request is safe to retry.
var ErrCaseNumberAllocationFailed = errors.New(
	"case number allocation retries exhausted",
)

// CreateCaseCommandHandler turns an intake request into a durable,
// uniquely-numbered case record.
//
// The handler validates the intake against the business rules, resolves the
// tenant's lab code, allocates the next {LAB_CODE}{YYYYMM}{SEQ} case number,
// and persists the case in received status. Validation and allocation are
// one logical operation: nothing persists unless both succeed.
type CreateCaseCommandHandler struct {
	uowFactory   CaseUoWFactory
	labDirectory ports.LabDirectory
}

// NewCreateCaseCommandHandler creates a handler for case creation.
func NewCreateCaseCommandHandler(
	uowFactory CaseUoWFactory,
	labDirectory ports.LabDirectory,
) CreateCaseCommandHandler {
	return CreateCaseCommandHandler{
		uowFactory:   uowFactory,
		labDirectory: labDirectory,
	}
}

// Handle processes the case creation command and returns the created case.
//
// Allocation is optimistic compare-and-retry: the highest persisted
// sequence for the (tenant, month) prefix seeds the proposal, the insert
// races against the unique index on the case number, and a collision
// retries with the next sequence value in a fresh transaction, bounded by
// maxCaseNumberAttempts.
func (h CreateCaseCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCaseCommand,
) (*dentalcase.Case, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	intake, err := dentalcase.NewIntake(cmd.IntakeRequest(), now)
	if err != nil {
		return nil, err
	}

	labCode, err := h.labDirectory.LabCode(ctx, cmd.TenantID())
	if err != nil {
		return nil, err
	}
	prefix := dentalcase.CaseNumberPrefix(labCode, now)

	sequence := 0
	for attempt := 0; attempt < maxCaseNumberAttempts; attempt++ {
		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return nil, err
		}

		caseRepo := uow.CaseRepository()
		if sequence == 0 {
			last, seqErr := caseRepo.LastSequence(ctx, cmd.TenantID(), prefix)
			if seqErr != nil {
				_ = uow.Rollback(ctx)
				return nil, seqErr
			}
			sequence = last + 1
		}

		newCase, buildErr := h.buildCase(cmd, labCode, sequence, intake, now)
		if buildErr != nil {
			_ = uow.Rollback(ctx)
			return nil, buildErr
		}

		err = caseRepo.Add(ctx, newCase)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Lost the race on this sequence value; try the next one.
			_ = uow.Rollback(ctx)
			sequence++
			continue
		}
		if err != nil {
			_ = uow.Rollback(ctx)
			return nil, err
		}

		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}

		return newCase, nil
	}

	return nil, ErrCaseNumberAllocationFailed
}

func (h CreateCaseCommandHandler) buildCase(
	cmd CreateCaseCommand,
	labCode string,
	sequence int,
	intake dentalcase.Intake,
	now time.Time,
) (*dentalcase.Case, error) {
	caseNumber, err := dentalcase.NewCaseNumber(labCode, now, sequence)
	if err != nil {
		return nil, err
	}

	return dentalcase.NewCase(kernel.NewUUID(), cmd.TenantID(), caseNumber, intake, now)
}

package commands_test

import (
	"testing"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionCaseStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Received)
	cmd, err := commands.NewTransitionCaseStatusCommand(testCase.ID(), "in_progress")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, testCase.ID()).Return(testCase, nil).Once(),
		caseRepo.On("CompareAndSwapStatus", ctx, testCase.ID(),
			dentalcase.Received, dentalcase.InProgress).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionCaseStatusCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, dentalcase.InProgress, updated.Status())
	caseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionCaseStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Received)
	cmd, err := commands.NewTransitionCaseStatusCommand(testCase.ID(), "shipped")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, testCase.ID()).Return(testCase, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionCaseStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, dentalcase.ErrInvalidTransition)
	caseRepo.AssertNotCalled(t, "CompareAndSwapStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestTransitionCaseStatusCommandHandler_Handle_LostConcurrentRace(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Received)
	cmd, err := commands.NewTransitionCaseStatusCommand(testCase.ID(), "in_progress")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, testCase.ID()).Return(testCase, nil).Once(),
		caseRepo.On("CompareAndSwapStatus", ctx, testCase.ID(),
			dentalcase.Received, dentalcase.InProgress).
			Return(errs.NewObjectNotFoundError("case", testCase.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionCaseStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCaseConcurrentlyModified)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestTransitionCaseStatusCommandHandler_Handle_CaseNotFound(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Received)
	cmd, err := commands.NewTransitionCaseStatusCommand(testCase.ID(), "cancelled")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, testCase.ID()).
			Return(nil, errs.NewObjectNotFoundError("case", testCase.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionCaseStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestTransitionCaseStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionCaseStatusCommand{} // not constructed properly

	factory := new(MockCaseUoWFactory)
	handler := commands.NewTransitionCaseStatusCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionCaseStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

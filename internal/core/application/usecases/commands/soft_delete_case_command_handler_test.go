package commands_test

import (
	"testing"
	"time"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSoftDeleteCaseCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		caseID := kernel.NewUUID()

		cmd, err := commands.NewSoftDeleteCaseCommand(caseID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CaseID().IsEqual(caseID))
	})

	t.Run("should fail with an unconstructed case identifier", func(t *testing.T) {
		_, err := commands.NewSoftDeleteCaseCommand(kernel.UUID{})

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestSoftDeleteCaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Received)
	cmd, err := commands.NewSoftDeleteCaseCommand(testCase.ID())
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, testCase.ID()).Return(testCase, nil).Once(),
		caseRepo.On("Update", ctx, mock.AnythingOfType("*dentalcase.Case")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSoftDeleteCaseCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testCase.IsDeleted())
	require.NotNil(t, testCase.DeletedAt())
	caseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSoftDeleteCaseCommandHandler_Handle_TerminalCase(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Delivered)
	cmd, err := commands.NewSoftDeleteCaseCommand(testCase.ID())
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, testCase.ID()).Return(testCase, nil).Once(),
		caseRepo.On("Update", ctx, mock.AnythingOfType("*dentalcase.Case")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSoftDeleteCaseCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testCase.IsDeleted())
	assert.Equal(t, dentalcase.Delivered, testCase.Status())
	uow.AssertExpectations(t)
}

func TestSoftDeleteCaseCommandHandler_Handle_AlreadyDeleted(t *testing.T) {
	ctx := t.Context()

	testCase := restoreTestCase(t, dentalcase.Received)
	require.NoError(t, testCase.MarkDeleted(time.Date(2024, time.November, 10, 12, 0, 0, 0, time.UTC)))

	cmd, err := commands.NewSoftDeleteCaseCommand(testCase.ID())
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

	handler := commands.NewSoftDeleteCaseCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, dentalcase.ErrCaseIsDeleted)
	caseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSoftDeleteCaseCommandHandler_Handle_CaseNotFound(t *testing.T) {
	ctx := t.Context()

	caseID := kernel.NewUUID()
	cmd, err := commands.NewSoftDeleteCaseCommand(caseID)
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", ctx, caseID).
			Return(nil, errs.NewObjectNotFoundError("case", caseID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSoftDeleteCaseCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSoftDeleteCaseCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SoftDeleteCaseCommand{} // not constructed properly

	factory := new(MockCaseUoWFactory)

	handler := commands.NewSoftDeleteCaseCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSoftDeleteCaseCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

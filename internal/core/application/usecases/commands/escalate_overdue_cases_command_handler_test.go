package commands_test

import (
	"testing"
	"time"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreOverdueCase(t *testing.T, priority dentalcase.Priority) *dentalcase.Case {
	t.Helper()

	teeth, err := dentalcase.NewToothNumbers([]int{8})
	require.NoError(t, err)

	intake, err := dentalcase.RestoreIntake(
		"patient-001", "dr-smith",
		dentalcase.ProcedureCrown, priority,
		false, teeth, "",
		time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	number, err := dentalcase.NewCaseNumber("GLW", time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	c, err := dentalcase.RestoreCase(
		kernel.NewUUID(), "lab-42", number, intake,
		time.Date(2024, time.September, 20, 0, 0, 0, 0, time.UTC),
		dentalcase.InProgress, nil, nil, false, nil,
	)
	require.NoError(t, err)
	return c
}

func TestNewEscalateOverdueCasesCommand(t *testing.T) {
	t.Run("should create a valid parameterless command", func(t *testing.T) {
		cmd := commands.NewEscalateOverdueCasesCommand()

		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject validation of an unconstructed command", func(t *testing.T) {
		var cmd commands.EscalateOverdueCasesCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrEscalateOverdueCasesCommandIsNotConstructed)
	})
}

func TestEscalateOverdueCasesCommandHandler_Handle_EscalatesAndSkipsUrgent(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewEscalateOverdueCasesCommand()

	normalCase := restoreOverdueCase(t, dentalcase.PriorityNormal)
	urgentCase := restoreOverdueCase(t, dentalcase.PriorityUrgent)
	overdue := []*dentalcase.Case{normalCase, urgentCase}

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("GetAllOverdue", ctx, mock.AnythingOfType("time.Time")).Return(overdue, nil).Once(),
		caseRepo.On("Update", ctx, normalCase).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEscalateOverdueCasesCommandHandler(factory)
	escalated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, escalated)
	assert.Equal(t, dentalcase.PriorityUrgent, normalCase.Intake().Priority())
	caseRepo.AssertNotCalled(t, "Update", ctx, urgentCase)
	caseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestEscalateOverdueCasesCommandHandler_Handle_NothingOverdue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewEscalateOverdueCasesCommand()

	caseRepo := new(MockCaseRepository)
	uow := new(MockCaseUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("GetAllOverdue", ctx, mock.AnythingOfType("time.Time")).
			Return([]*dentalcase.Case{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEscalateOverdueCasesCommandHandler(factory)
	escalated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, escalated)
	caseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

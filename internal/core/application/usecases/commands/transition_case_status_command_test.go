package commands_test

import (
	"testing"

	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/core/domain/model/kernel"
	"casetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionCaseStatusCommand(t *testing.T) {
	t.Run("should create a valid command with a parsed target", func(t *testing.T) {
		caseID := kernel.NewUUID()

		cmd, err := commands.NewTransitionCaseStatusCommand(caseID, "in_progress")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CaseID().IsEqual(caseID))
		assert.Equal(t, dentalcase.InProgress, cmd.Target())
	})

	t.Run("should fail with an unconstructed case identifier", func(t *testing.T) {
		_, err := commands.NewTransitionCaseStatusCommand(kernel.UUID{}, "in_progress")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with an unknown status name", func(t *testing.T) {
		_, err := commands.NewTransitionCaseStatusCommand(kernel.NewUUID(), "done")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject validation of an unconstructed command", func(t *testing.T) {
		var cmd commands.TransitionCaseStatusCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrTransitionCaseStatusCommandIsNotConstructed)
	})
}

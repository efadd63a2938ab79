package dentalcase_test

import (
	"testing"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	t.Run("should parse every priority name case-insensitively", func(t *testing.T) {
		inputs := map[string]dentalcase.Priority{
			"low":    dentalcase.PriorityLow,
			"normal": dentalcase.PriorityNormal,
			"High":   dentalcase.PriorityHigh,
			"URGENT": dentalcase.PriorityUrgent,
		}

		for raw, expected := range inputs {
			priority, err := dentalcase.ParsePriority(raw)
			require.NoError(t, err, "ParsePriority(%q)", raw)
			assert.Equal(t, expected, priority)
		}
	})

	t.Run("should default an empty value to normal", func(t *testing.T) {
		priority, err := dentalcase.ParsePriority("")

		require.NoError(t, err)
		assert.Equal(t, dentalcase.PriorityNormal, priority)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := dentalcase.ParsePriority("critical")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

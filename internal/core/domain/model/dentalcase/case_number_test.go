package dentalcase_test

import (
	"testing"
	"time"

	"casetrack/internal/core/domain/model/dentalcase"
	"casetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func november2024() time.Time {
	return time.Date(2024, time.November, 15, 10, 30, 0, 0, time.UTC)
}

func TestNewCaseNumber(t *testing.T) {
	t.Run("should format as lab code, year-month and zero-padded sequence", func(t *testing.T) {
		number, err := dentalcase.NewCaseNumber("GLW", november2024(), 1)

		require.NoError(t, err)
		assert.Equal(t, "GLW202411001", number.String())
		assert.Equal(t, "GLW", number.LabCode())
		assert.Equal(t, "202411", number.YearMonth())
		assert.Equal(t, 1, number.Sequence())
	})

	t.Run("should normalize the lab code to uppercase", func(t *testing.T) {
		number, err := dentalcase.NewCaseNumber(" glw ", november2024(), 42)

		require.NoError(t, err)
		assert.Equal(t, "GLW202411042", number.String())
	})

	t.Run("should reject an empty lab code", func(t *testing.T) {
		_, err := dentalcase.NewCaseNumber("", november2024(), 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-letter lab codes", func(t *testing.T) {
		_, err := dentalcase.NewCaseNumber("GL2", november2024(), 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject sequences outside 1-999", func(t *testing.T) {
		for _, sequence := range []int{0, -1, 1000} {
			_, err := dentalcase.NewCaseNumber("GLW", november2024(), sequence)
			require.Error(t, err, "sequence %d", sequence)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestParseCaseNumber(t *testing.T) {
	t.Run("should round-trip a formatted case number", func(t *testing.T) {
		original, err := dentalcase.NewCaseNumber("ACM", november2024(), 237)
		require.NoError(t, err)

		parsed, err := dentalcase.ParseCaseNumber(original.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
		assert.Equal(t, "ACM202411237", parsed.String())
	})

	t.Run("should reject malformed inputs", func(t *testing.T) {
		malformed := []string{
			"",
			"202411001",
			"GLW2024001",
			"glw202411001",
			"GLW202411001X",
		}
		for _, raw := range malformed {
			_, err := dentalcase.ParseCaseNumber(raw)
			require.Error(t, err, "ParseCaseNumber(%q)", raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject a zero sequence component", func(t *testing.T) {
		_, err := dentalcase.ParseCaseNumber("GLW202411000")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCaseNumber_Next(t *testing.T) {
	t.Run("should increment the sequence and keep the prefix", func(t *testing.T) {
		number, err := dentalcase.NewCaseNumber("GLW", november2024(), 41)
		require.NoError(t, err)

		next, err := number.Next()

		require.NoError(t, err)
		assert.Equal(t, "GLW202411042", next.String())
		assert.Equal(t, 41, number.Sequence())
	})

	t.Run("should fail when the month's sequence space is exhausted", func(t *testing.T) {
		number, err := dentalcase.NewCaseNumber("GLW", november2024(), 999)
		require.NoError(t, err)

		_, err = number.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject an unconstructed value", func(t *testing.T) {
		var number dentalcase.CaseNumber

		_, err := number.Next()

		assert.ErrorIs(t, err, dentalcase.ErrCaseNumberIsNotConstructed)
	})
}

func TestCaseNumberPrefix(t *testing.T) {
	t.Run("should build the shared monthly prefix", func(t *testing.T) {
		assert.Equal(t, "GLW202411", dentalcase.CaseNumberPrefix("glw", november2024()))
	})
}

package errs_test

import (
	"errors"
	"testing"

	"casetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("patientRef")

		assert.Equal(t, "patientRef", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: patientRef", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("patientRef", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: patientRef (cause: missing required field)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("procedure")

		assert.Equal(t, "procedure", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: procedure", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not in catalog")
		err := errs.NewValueIsInvalidErrorWithCause("procedure", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: procedure (cause: not in catalog)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("toothNumber", 33, 1, 32)

		assert.Equal(t, "toothNumber", err.ParamName)
		assert.Equal(t, 33, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 32, err.Max)
		assert.Equal(t, "value is invalid: 33 is toothNumber, min value is 1, max value is 32", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("skill", 1.5, 0.0, 1.0, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: validation failed)")
		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("caseId", "GLW202411001")

		assert.Equal(t, "caseId", err.ParamName)
		assert.Equal(t, "GLW202411001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: GLW202411001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("caseId", "GLW202411001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: caseId, ID is: GLW202411001 (cause: record not found)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("caseNumber", "GLW202411002")

		assert.Equal(t, "caseNumber", err.ParamName)
		assert.Equal(t, "GLW202411002", err.ID)
		assert.Equal(t, "object already exists: GLW202411002", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("caseNumber", "GLW202411002", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: caseNumber, ID is: GLW202411002 (cause: duplicated key)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectAlreadyExists))
	})
}

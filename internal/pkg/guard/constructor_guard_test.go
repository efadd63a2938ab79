package guard_test

import (
	"errors"
	"testing"

	"casetrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for a guard created via NewConstructorGuard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NoError(t, g.Validate(errors.New("should not be returned")))
		assert.NoError(t, g.Validate(nil))
	})

	t.Run("should return the supplied error for a zero-value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		customErr := errors.New("object must be created via NewObject")

		err := g.Validate(customErr)

		require.Error(t, err)
		assert.ErrorIs(t, err, customErr)
	})

	t.Run("should fall back to the default error when none is supplied", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errNotConstructed := errors.New("Widget must be created via NewWidget")

	type widget struct {
		name  string
		guard guard.ConstructorGuard
	}

	newWidget := func(name string) widget {
		return widget{name: name, guard: guard.NewConstructorGuard()}
	}

	t.Run("should distinguish constructed from zero-value instances", func(t *testing.T) {
		constructed := newWidget("w1")
		assert.NoError(t, constructed.guard.Validate(errNotConstructed))

		var zero widget
		assert.ErrorIs(t, zero.guard.Validate(errNotConstructed), errNotConstructed)
	})
}

package guard_test

import (
	"errors"
	"testing"

	"paquexpress/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Evidence struct {
		photoKey string
		guard    guard.ConstructorGuard
	}

	var errEvidenceNotConstructed = errors.New("Evidence must be created via NewEvidence")

	newEvidence := func(photoKey string) (Evidence, error) {
		if photoKey == "" {
			return Evidence{}, errors.New("photo key is required")
		}
		return Evidence{
			photoKey: photoKey,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(e Evidence) error {
		return e.guard.Validate(errEvidenceNotConstructed)
	}

	t.Run("constructed_object_passes_validation", func(t *testing.T) {
		evidence, err := newEvidence("pkg_1_20240101.jpg")
		require.NoError(t, err)
		require.NoError(t, validate(evidence))
		assert.Equal(t, "pkg_1_20240101.jpg", evidence.photoKey)
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var evidence Evidence
		err := validate(evidence)
		require.Error(t, err)
		assert.Equal(t, errEvidenceNotConstructed, err)
	})
}

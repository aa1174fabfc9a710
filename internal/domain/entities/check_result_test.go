//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/test/domain/entitybuilders"
)

func TestEvaluateCompatibility(t *testing.T) {
	t.Parallel()

	required := entities.Version{Major: 2, Minor: 1, Bugfix: 0}

	t.Run("should accept an equal or newer version of the same major", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().WithMinVersion("2.1.0").BuildDependency()

		for _, found := range []entities.Version{required, {Major: 2, Minor: 5, Bugfix: 3}} {
			// when
			result := entities.EvaluateCompatibility(dep, required, found)

			// then
			assert.Equal(t, entities.StatusOK, result.Status)
			require.NoError(t, result.Err)
			assert.Equal(t, found, *result.Found)
		}
	})

	t.Run("should only warn about a newer major version", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().BuildDependency()
		found := entities.Version{Major: 3, Minor: 0, Bugfix: 0}

		// when
		result := entities.EvaluateCompatibility(dep, required, found)

		// then
		assert.Equal(t, entities.StatusMajorMismatch, result.Status)
		var mismatch *entities.VersionMismatchError
		require.ErrorAs(t, result.Err, &mismatch)
		assert.True(t, mismatch.Major)
		assert.Equal(t, "Major mismatch, maybe incompatible. Required 2.1.0, Found 3.0.0", result.Err.Error())
	})

	t.Run("should flag a lower version", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().BuildDependency()

		for _, found := range []entities.Version{{Major: 2, Minor: 0, Bugfix: 9}, {Major: 1, Minor: 9, Bugfix: 9}} {
			// when
			result := entities.EvaluateCompatibility(dep, required, found)

			// then
			assert.Equal(t, entities.StatusBelowMinimum, result.Status)
			assert.Equal(t, "Version lower than required. Required 2.1.0, Found "+found.String(), result.Err.Error())
		}
	})
}

func TestCheckStatusString(t *testing.T) {
	t.Parallel()

	t.Run("should name every status", func(t *testing.T) {
		t.Parallel()

		// given
		statuses := []entities.CheckStatus{
			entities.StatusOK,
			entities.StatusMajorMismatch,
			entities.StatusBelowMinimum,
			entities.StatusMissing,
			entities.StatusUnknown,
			entities.CheckStatus(42),
		}

		// when
		names := make([]string, 0, len(statuses))
		for _, status := range statuses {
			names = append(names, status.String())
		}

		// then
		assert.Equal(t, []string{"ok", "major-mismatch", "below-minimum", "missing", "unknown", "invalid"}, names)
	})
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	t.Run("should name a single missing path", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.NotFoundError{Paths: []string{"../dep"}}

		// then
		assert.Equal(t, "dependency ../dep does not exist", err.Error())
	})

	t.Run("should list several missing paths", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.NotFoundError{Paths: []string{"../a", "../b"}}

		// then
		assert.Equal(t, "2 dependencies do not exist: ../a, ../b", err.Error())
	})
}

func TestDependency(t *testing.T) {
	t.Parallel()

	t.Run("should expose its parent directory and parsed minimum", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyBuilder().
			WithRelativePath("../../Libraries/core").
			WithMinVersion("1.4.2").
			BuildDependency()

		// when
		version, err := dep.RequiredVersion()

		// then
		require.NoError(t, err)
		assert.Equal(t, "../../Libraries", dep.ParentDir())
		assert.Equal(t, entities.Version{Major: 1, Minor: 4, Bugfix: 2}, version)
	})
}

//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

func TestParseCheckoutMode(t *testing.T) {
	t.Parallel()

	t.Run("should accept every documented mode", func(t *testing.T) {
		t.Parallel()

		// given
		expected := map[string]entities.CheckoutMode{
			"master":            entities.TrackBranch,
			"latest_release":    entities.LatestTag,
			"specified_version": entities.ExactVersion,
		}

		for raw, want := range expected {
			// when
			mode, err := entities.ParseCheckoutMode(raw)

			// then
			require.NoError(t, err)
			assert.Equal(t, want, mode)
			assert.Equal(t, raw, mode.String())
		}
	})

	t.Run("should reject an unknown mode", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseCheckoutMode("develop")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `illegal mode: "develop"`)
		assert.Contains(t, err.Error(), "specified_version")
	})

	t.Run("should unmarshal from text", func(t *testing.T) {
		t.Parallel()

		// given
		var mode entities.CheckoutMode

		// when
		err := mode.UnmarshalText([]byte("specified_version"))

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ExactVersion, mode)
		assert.Error(t, mode.UnmarshalText([]byte("")))
	})

	t.Run("should default to the latest tag", func(t *testing.T) {
		t.Parallel()

		// given
		var mode entities.CheckoutMode

		// then
		assert.Equal(t, entities.LatestTag, mode)
		assert.Equal(t, []string{"master", "latest_release", "specified_version"}, entities.CheckoutModeNames())
	})
}

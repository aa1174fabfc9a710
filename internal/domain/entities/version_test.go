//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse a three component version", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "1.2.3"

		// when
		v, err := entities.ParseVersion(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Version{Major: 1, Minor: 2, Bugfix: 3}, v)
		assert.Equal(t, "1.2.3", v.String())
	})

	t.Run("should ignore components after the third", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "4.5.6.7.8"

		// when
		v, err := entities.ParseVersion(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "4.5.6", v.String())
	})

	t.Run("should round trip through its string form", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"0.0.0", "1.10.100", "2.0.1.9", "10.3.7"} {
			// given
			first, err := entities.ParseVersion(raw)
			require.NoError(t, err)

			// when
			second, err := entities.ParseVersion(first.String())

			// then
			require.NoError(t, err)
			assert.True(t, first.Equal(second), raw)
			assert.Equal(t, first, second)
		}
	})

	t.Run("should reject malformed versions with the input in the message", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "1", "1.2", "1..3", "a.b.c", "1.2.x", "-1.0.0", "none"} {
			// when
			_, err := entities.ParseVersion(raw)

			// then
			var parseErr *entities.ParseError
			require.ErrorAs(t, err, &parseErr, raw)
			assert.Equal(t, "illegal version number: "+raw, err.Error())
		}
	})
}

func TestParseTagVersion(t *testing.T) {
	t.Parallel()

	t.Run("should accept a v prefix", func(t *testing.T) {
		t.Parallel()

		// given
		tags := []string{"v1.2.3", "V1.2.3", "1.2.3"}

		for _, tag := range tags {
			// when
			v, err := entities.ParseTagVersion(tag)

			// then
			require.NoError(t, err, tag)
			assert.Equal(t, entities.Version{Major: 1, Minor: 2, Bugfix: 3}, v)
		}
	})

	t.Run("should report the original tag when it cannot be parsed", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseTagVersion("release-1")

		// then
		require.Error(t, err)
		assert.Equal(t, "illegal version number: release-1", err.Error())
	})
}

func TestVersionOrdering(t *testing.T) {
	t.Parallel()

	t.Run("should order by major then minor then bugfix", func(t *testing.T) {
		t.Parallel()

		// given
		ordered := []entities.Version{
			{Major: 0, Minor: 9, Bugfix: 9},
			{Major: 1, Minor: 0, Bugfix: 0},
			{Major: 1, Minor: 0, Bugfix: 1},
			{Major: 1, Minor: 2, Bugfix: 0},
			{Major: 2, Minor: 0, Bugfix: 0},
		}

		for i := range ordered {
			for j := range ordered {
				// when
				less := ordered[i].LessThan(ordered[j])
				greater := ordered[i].GreaterThan(ordered[j])
				equal := ordered[i].Equal(ordered[j])

				// then
				assert.Equal(t, i < j, less)
				assert.Equal(t, i > j, greater)
				assert.Equal(t, i == j, equal)
			}
		}
	})

	t.Run("should have exactly one of greater or lower for distinct versions", func(t *testing.T) {
		t.Parallel()

		// given
		a := entities.Version{Major: 3, Minor: 1, Bugfix: 4}
		b := entities.Version{Major: 3, Minor: 1, Bugfix: 5}

		// when
		aFirst := a.LessThan(b)
		bFirst := b.LessThan(a)

		// then
		assert.NotEqual(t, aFirst, bFirst)
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
		assert.Equal(t, 0, a.Compare(a))
	})
}

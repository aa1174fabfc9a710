//go:build unit

package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/infrastructure/repositories/git"
	doubles "github.com/rios0rios0/gitdeps/test/infrastructure/repositorydoubles"
)

func TestVersionSourceRepositoryCurrentVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse the tag part of the description", func(t *testing.T) {
		t.Parallel()

		for description, expected := range map[string]entities.Version{
			"1.2.3":              {Major: 1, Minor: 2, Bugfix: 3},
			"v1.2.3-4-gabcdef0":  {Major: 1, Minor: 2, Bugfix: 3},
			"2.0.0.1-1-g1234567": {Major: 2, Minor: 0, Bugfix: 0},
		} {
			// given
			source := git.NewVersionSourceRepository(&doubles.SpyGitRepository{Description: description})

			// when
			version, err := source.CurrentVersion(context.Background(), "/deps/core")

			// then
			require.NoError(t, err, description)
			assert.Equal(t, expected, version, description)
		}
	})

	t.Run("should pass git errors through", func(t *testing.T) {
		t.Parallel()

		// given
		source := git.NewVersionSourceRepository(&doubles.SpyGitRepository{
			DescribeErr: &entities.NoTagError{Path: "/deps/core"},
		})

		// when
		_, err := source.CurrentVersion(context.Background(), "/deps/core")

		// then
		var noTag *entities.NoTagError
		require.ErrorAs(t, err, &noTag)
	})

	t.Run("should reject a tag that is not a version", func(t *testing.T) {
		t.Parallel()

		// given
		source := git.NewVersionSourceRepository(&doubles.SpyGitRepository{Description: "stable-3-gabcdef0"})

		// when
		_, err := source.CurrentVersion(context.Background(), "/deps/core")

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "unreadable version tag in /deps/core")
	})
}

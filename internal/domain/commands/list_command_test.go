//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdeps/internal/domain/commands"
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	doubles "github.com/rios0rios0/gitdeps/test/infrastructure/repositorydoubles"
)

func readmeLines(deps ...string) []string {
	lines := []string{"# Dependencies", "* [**me**](https://example.com/me)"}
	return append(lines, deps...)
}

func TestListCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report the parsed dependencies as text under a section", func(t *testing.T) {
		t.Parallel()

		// given
		declarations := &doubles.StubDeclarationRepository{
			Lines: readmeLines("* [core](https://example.com/core)(1.2.0)"),
		}
		reporter := &doubles.SpyReporterRepository{}
		cmd := commands.NewListCommand(declarations, reporter)

		// when
		deps, err := cmd.Execute(context.Background(), commands.ListOptions{ReadmePath: "/repo/README.md"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo/README.md"}, declarations.ReadPaths)
		assert.Equal(t, []string{"Dependencies"}, reporter.Sections)
		assert.Equal(t, entities.OutputText, reporter.ListFormat)
		require.Len(t, deps, 1)
		assert.Equal(t, deps, reporter.Listed)
		assert.Equal(t, "../core", deps[0].RelativePath)
	})

	t.Run("should omit the section header for yaml output", func(t *testing.T) {
		t.Parallel()

		// given
		declarations := &doubles.StubDeclarationRepository{Lines: readmeLines()}
		reporter := &doubles.SpyReporterRepository{}
		cmd := commands.NewListCommand(declarations, reporter)

		// when
		deps, err := cmd.Execute(context.Background(), commands.ListOptions{Output: entities.OutputYAML})

		// then
		require.NoError(t, err)
		assert.Empty(t, deps)
		assert.Empty(t, reporter.Sections)
		assert.Equal(t, entities.OutputYAML, reporter.ListFormat)
	})

	t.Run("should wrap read failures", func(t *testing.T) {
		t.Parallel()

		// given
		declarations := &doubles.StubDeclarationRepository{ReadErr: errors.New("permission denied")}
		cmd := commands.NewListCommand(declarations, &doubles.SpyReporterRepository{})

		// when
		_, err := cmd.Execute(context.Background(), commands.ListOptions{ReadmePath: "README.md"})

		// then
		require.EqualError(t, err, "failed to read README.md: permission denied")
	})

	t.Run("should surface declaration errors", func(t *testing.T) {
		t.Parallel()

		// given
		declarations := &doubles.StubDeclarationRepository{Lines: []string{"# Dependencies", "* [dep](u)(1.0.0)"}}
		reporter := &doubles.SpyReporterRepository{}
		cmd := commands.NewListCommand(declarations, reporter)

		// when
		_, err := cmd.Execute(context.Background(), commands.ListOptions{ReadmePath: "README.md"})

		// then
		var declErr *entities.DeclarationError
		require.ErrorAs(t, err, &declErr)
		assert.Empty(t, reporter.Listed)
	})

	t.Run("should return reporter failures", func(t *testing.T) {
		t.Parallel()

		// given
		declarations := &doubles.StubDeclarationRepository{Lines: readmeLines()}
		reporter := &doubles.SpyReporterRepository{ListErr: errors.New("unsupported output format")}
		cmd := commands.NewListCommand(declarations, reporter)

		// when
		_, err := cmd.Execute(context.Background(), commands.ListOptions{Output: "json"})

		// then
		require.EqualError(t, err, "unsupported output format")
	})
}

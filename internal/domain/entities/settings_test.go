//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Run("should use defaults without a config file", func(t *testing.T) {
		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultReadme, settings.Readme)
		assert.Equal(t, entities.LatestTag, settings.Mode)
		assert.Equal(t, entities.OutputText, settings.Output)
		assert.False(t, settings.AsSubmodule)
		assert.Empty(t, settings.Rewrites)
	})

	t.Run("should read every field from a yaml file", func(t *testing.T) {
		// given
		path := writeConfig(t, t.TempDir(), ".gitdeps.yaml", `
readme: docs/README.md
mode: specified_version
as_submodule: true
output: yaml
rewrites:
  - name: corp
    prefix: https://git.example.com/
    replacement: "git@git.example.com:"
    suffix: .git
disabled_rewriters:
  - psi-gfa-ssh
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "docs/README.md", settings.Readme)
		assert.Equal(t, entities.ExactVersion, settings.Mode)
		assert.True(t, settings.AsSubmodule)
		assert.Equal(t, entities.OutputYAML, settings.Output)
		require.Len(t, settings.Rewrites, 1)
		assert.Equal(t, entities.RewriteRule{
			Name:        "corp",
			Prefix:      "https://git.example.com/",
			Replacement: "git@git.example.com:",
			Suffix:      ".git",
		}, settings.Rewrites[0])
		assert.False(t, settings.RewriterEnabled("psi-gfa-ssh"))
		assert.True(t, settings.RewriterEnabled("other"))
	})

	t.Run("should let the environment override the file", func(t *testing.T) {
		// given
		path := writeConfig(t, t.TempDir(), "gitdeps.yml", "mode: master\n")
		t.Setenv("GITDEPS_MODE", "specified_version")
		t.Setenv("GITDEPS_AS_SUBMODULE", "true")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ExactVersion, settings.Mode)
		assert.True(t, settings.AsSubmodule)
	})

	t.Run("should read disabled rewriters from the environment", func(t *testing.T) {
		// given
		t.Setenv("GITDEPS_DISABLED_REWRITERS", "psi-gfa-ssh,corp")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"psi-gfa-ssh", "corp"}, settings.DisabledRewriters)
		assert.False(t, settings.RewriterEnabled("psi-gfa-ssh"))
	})

	t.Run("should reject an unknown mode", func(t *testing.T) {
		// given
		path := writeConfig(t, t.TempDir(), ".gitdeps.yaml", "mode: nightly\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "illegal mode")
	})

	t.Run("should reject a rewrite without prefix", func(t *testing.T) {
		// given
		path := writeConfig(t, t.TempDir(), ".gitdeps.yaml", "rewrites:\n  - replacement: x\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.EqualError(t, err, "rewrites[0].prefix is required")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "absent.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	t.Run("should reject an unsupported output", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Output = "json"

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `got "json"`)
	})

	t.Run("should reject an empty readme", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Readme = ""

		// when
		err := settings.Validate()

		// then
		require.EqualError(t, err, "readme must not be empty")
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("should find a config file in the repository", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())
		repoDir := t.TempDir()
		expected := writeConfig(t, repoDir, ".gitdeps.yml", "mode: master\n")

		// when
		path, err := entities.FindConfigFile(repoDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should look into the .config directory", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())
		repoDir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(repoDir, ".config"), 0o755))
		expected := writeConfig(t, filepath.Join(repoDir, ".config"), "gitdeps.yaml", "mode: master\n")

		// when
		path, err := entities.FindConfigFile(repoDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should return nothing when no config exists", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())

		// when
		path, err := entities.FindConfigFile(t.TempDir())

		// then
		require.NoError(t, err)
		assert.Empty(t, path)
	})
}

package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment variable overrides (e.g. GITDEPS_MODE).
	EnvPrefix = "GITDEPS"

	DefaultReadme = "README.md"
	OutputText    = "text"
	OutputYAML    = "yaml"
)

// Settings is the optional per-repository configuration.
type Settings struct {
	Readme            string        `mapstructure:"readme"`
	Mode              CheckoutMode  `mapstructure:"mode"`
	AsSubmodule       bool          `mapstructure:"as_submodule"`
	Output            string        `mapstructure:"output"`
	Rewrites          []RewriteRule `mapstructure:"rewrites"`
	DisabledRewriters []string      `mapstructure:"disabled_rewriters"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Readme: DefaultReadme,
		Mode:   LatestTag,
		Output: OutputText,
	}
}

// NewSettings reads a YAML config file, applies GITDEPS_* environment
// overrides and validates the result. An empty path yields the defaults
// with environment overrides only.
func NewSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("readme", defaults.Readme)
	v.SetDefault("mode", defaults.Mode.String())
	v.SetDefault("as_submodule", defaults.AsSubmodule)
	v.SetDefault("output", defaults.Output)
	// AutomaticEnv only reaches keys viper already knows about.
	v.SetDefault("disabled_rewriters", []string{})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings, settingsDecodeHook); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// settingsDecodeHook lets CheckoutMode decode itself from its textual form.
func settingsDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// Validate checks for values that cannot be used.
func (s *Settings) Validate() error {
	if s.Readme == "" {
		return errors.New("readme must not be empty")
	}
	if s.Output != OutputText && s.Output != OutputYAML {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputYAML, s.Output)
	}
	for i, rule := range s.Rewrites {
		if rule.Prefix == "" {
			return fmt.Errorf("rewrites[%d].prefix is required", i)
		}
	}
	return nil
}

// RewriterEnabled reports whether a built-in rewriter was left enabled.
func (s *Settings) RewriterEnabled(name string) bool {
	for _, disabled := range s.DisabledRewriters {
		if disabled == name {
			return false
		}
	}
	return true
}

// FindConfigFile searches the repository directory and the user's home for a
// config file. It returns an empty path and no error when none exists.
func FindConfigFile(repoDir string) (string, error) {
	locations := []string{
		repoDir,
		filepath.Join(repoDir, ".config"),
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".gitdeps.yaml",
		".gitdeps.yml",
		"gitdeps.yaml",
		"gitdeps.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			info, statErr := os.Stat(p)
			if statErr == nil && !info.IsDir() {
				return p, nil
			}
			if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
				return "", fmt.Errorf("failed to inspect %q: %w", p, statErr)
			}
		}
	}
	return "", nil
}

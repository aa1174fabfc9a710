package controllers

import (
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// runContext is what every controller resolves before calling its command.
type runContext struct {
	RepoDir    string
	ReadmePath string
	DryRun     bool
	Settings   *entities.Settings
}

// AddGlobalFlags adds the flags shared by the root command and all subcommands.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("readme", "r", "",
		"README declaring the dependencies, relative to the repository (default: README.md)")
	cmd.PersistentFlags().StringP("output", "o", "",
		fmt.Sprintf("Listing format: %s or %s", entities.OutputText, entities.OutputYAML))
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// addCheckoutFlags adds the flags that only matter when checking out.
func addCheckoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", entities.LatestTag.String(),
		fmt.Sprintf("Checkout mode, one of %v", entities.CheckoutModeNames()))
	cmd.Flags().Bool("as-submodule", false,
		"Add dependencies as submodules instead of cloning them")
}

// resolveRunContext loads the settings for the repository named by args and
// applies command line overrides on top of them.
func resolveRunContext(cmd *cobra.Command, args []string) (*runContext, error) {
	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}
	repoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath, err = entities.FindConfigFile(repoDir)
		if err != nil {
			return nil, err
		}
	}
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, err
	}

	if err = applyFlagOverrides(cmd, settings); err != nil {
		return nil, err
	}

	readme := settings.Readme
	if !filepath.IsAbs(readme) {
		readme = filepath.Join(repoDir, readme)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return &runContext{
		RepoDir:    repoDir,
		ReadmePath: readme,
		DryRun:     dryRun,
		Settings:   settings,
	}, nil
}

func applyFlagOverrides(cmd *cobra.Command, settings *entities.Settings) error {
	if readme, _ := cmd.Flags().GetString("readme"); readme != "" {
		settings.Readme = readme
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		settings.Output = output
	}
	if cmd.Flags().Lookup("mode") != nil && cmd.Flags().Changed("mode") {
		raw, _ := cmd.Flags().GetString("mode")
		mode, err := entities.ParseCheckoutMode(raw)
		if err != nil {
			return err
		}
		settings.Mode = mode
	}
	if cmd.Flags().Lookup("as-submodule") != nil && cmd.Flags().Changed("as-submodule") {
		settings.AsSubmodule, _ = cmd.Flags().GetBool("as-submodule")
	}
	return settings.Validate()
}

package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdeps/internal/domain/commands"
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [path]",
		Short: "Check if all dependencies are present",
		Long: `Check that every dependency exists next to the repository and that the
tag it is checked out at is not lower than the declared minimum version.
A newer major version is reported as a warning.`,
	}
}

// AddFlags adds no flags: the check controller only uses the global ones.
func (it *CheckController) AddFlags(_ *cobra.Command) {}

// Execute checks the dependencies.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	run, err := resolveRunContext(cmd, args)
	if err != nil {
		return err
	}

	if _, err = it.command.Execute(context.Background(), commands.CheckOptions{
		RepoDir:    run.RepoDir,
		ReadmePath: run.ReadmePath,
	}); err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return nil
}

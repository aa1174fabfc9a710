package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdeps/internal/domain/commands"
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [path]",
		Short: "List all dependencies",
		Long: `List the dependencies declared in the "Dependencies" section of the
repository README, with their URL and minimum version.`,
	}
}

// AddFlags adds no flags: the list controller only uses the global ones.
func (it *ListController) AddFlags(_ *cobra.Command) {}

// Execute lists the dependencies.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	run, err := resolveRunContext(cmd, args)
	if err != nil {
		return err
	}

	if _, err = it.command.Execute(context.Background(), commands.ListOptions{
		ReadmePath: run.ReadmePath,
		Output:     run.Settings.Output,
	}); err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	return nil
}

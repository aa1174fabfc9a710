package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdeps/internal/domain/commands"
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// CheckoutController handles the "checkout" subcommand.
type CheckoutController struct {
	command commands.Checkout
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(command commands.Checkout) *CheckoutController {
	return &CheckoutController{command: command}
}

// GetBind returns the Cobra command metadata for the checkout controller.
func (it *CheckoutController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "checkout [path]",
		Short: "Checkout dependencies",
		Long: `Clone every dependency that is not present yet into its declared location
relative to the repository, then move it to the revision selected by --mode:

  master             stay on the default branch
  latest_release     check out the tag with the highest version
  specified_version  check out the declared minimum version

Dependencies that already exist are left alone and only checked.`,
	}
}

// AddFlags adds the checkout-specific flags to the given Cobra command.
func (it *CheckoutController) AddFlags(cmd *cobra.Command) {
	addCheckoutFlags(cmd)
}

// Execute checks out the dependencies.
func (it *CheckoutController) Execute(cmd *cobra.Command, args []string) error {
	run, err := resolveRunContext(cmd, args)
	if err != nil {
		return err
	}

	if err = it.command.Execute(context.Background(), checkoutOptions(run)); err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}
	return nil
}

func checkoutOptions(run *runContext) commands.CheckoutOptions {
	return commands.CheckoutOptions{
		RepoDir:           run.RepoDir,
		ReadmePath:        run.ReadmePath,
		Mode:              run.Settings.Mode,
		AsSubmodule:       run.Settings.AsSubmodule,
		DryRun:            run.DryRun,
		Rewrites:          run.Settings.Rewrites,
		DisabledRewriters: run.Settings.DisabledRewriters,
	}
}

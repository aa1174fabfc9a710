package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdeps/internal/domain/commands"
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// RootController handles the root command, which combines the actions
// selected by --list, --check and --checkout in that order.
type RootController struct {
	list     commands.List
	check    commands.Check
	checkout commands.Checkout
}

// NewRootController creates a new RootController.
func NewRootController(
	list commands.List,
	check commands.Check,
	checkout commands.Checkout,
) *RootController {
	return &RootController{list: list, check: check, checkout: checkout}
}

// GetBind returns the Cobra command metadata for the root controller.
func (it *RootController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gitdeps [path]",
		Short: "Resolve and fetch the git dependencies declared in a README",
		Long: `Reads the "Dependencies" section of a repository README, where the folder
layout of related repositories is written as a nested bullet list and the
repository itself is marked in bold, then lists, checks or checks out
every dependency at its location relative to the repository.

Usage modes:
  gitdeps --list .                      List the declared dependencies
  gitdeps --check /path/to/repo         Check presence and versions
  gitdeps --checkout --mode master .    Clone missing dependencies`,
	}
}

// AddFlags adds the action selectors and checkout flags to the root command.
func (it *RootController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("list", false, "List all dependencies")
	cmd.Flags().Bool("check", false, "Check if all dependencies are present")
	cmd.Flags().Bool("checkout", false, "Checkout dependencies")
	addCheckoutFlags(cmd)
}

// Execute runs every selected action. Missing dependencies found by the
// check do not prevent the checkout, which is expected to fetch them.
func (it *RootController) Execute(cmd *cobra.Command, args []string) error {
	doList, _ := cmd.Flags().GetBool("list")
	doCheck, _ := cmd.Flags().GetBool("check")
	doCheckout, _ := cmd.Flags().GetBool("checkout")
	if !doList && !doCheck && !doCheckout {
		return cmd.Help()
	}

	run, err := resolveRunContext(cmd, args)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if doList {
		if _, err = it.list.Execute(ctx, commands.ListOptions{
			ReadmePath: run.ReadmePath,
			Output:     run.Settings.Output,
		}); err != nil {
			return fmt.Errorf("list failed: %w", err)
		}
	}

	var checkErr error
	if doCheck {
		_, checkErr = it.check.Execute(ctx, commands.CheckOptions{
			RepoDir:    run.RepoDir,
			ReadmePath: run.ReadmePath,
		})
		var notFound *entities.NotFoundError
		if checkErr != nil && !errors.As(checkErr, &notFound) {
			return fmt.Errorf("check failed: %w", checkErr)
		}
	}

	if doCheckout {
		if err = it.checkout.Execute(ctx, checkoutOptions(run)); err != nil {
			return fmt.Errorf("checkout failed: %w", err)
		}
	}

	switch {
	case checkErr == nil:
		return nil
	case doCheckout:
		logger.Infof("Dependencies reported missing by the check were checked out")
		return nil
	default:
		return fmt.Errorf("check failed: %w", checkErr)
	}
}

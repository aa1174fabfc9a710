package controllers

import (
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewRootController); err != nil {
		return err
	}
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckoutController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	listController *ListController,
	checkController *CheckController,
	checkoutController *CheckoutController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
		checkController,
		checkoutController,
	}
}

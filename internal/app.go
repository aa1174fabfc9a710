package internal

import (
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/infrastructure/controllers"
)

// AppInternal holds the controllers wired by the DIG container.
type AppInternal struct {
	root        *controllers.RootController
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(root *controllers.RootController, registered *[]entities.Controller) *AppInternal {
	return &AppInternal{root: root, controllers: *registered}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.RootController {
	return it.root
}

// GetControllers returns the controllers bound to subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

package commands

import (
	"context"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, opts ListOptions) ([]entities.Dependency, error)
}

// ListOptions holds runtime options for listing.
type ListOptions struct {
	ReadmePath string
	Output     string // entities.OutputText or entities.OutputYAML
}

// ListCommand prints the dependencies declared in a README.
type ListCommand struct {
	declarations repositories.DeclarationRepository
	reporter     repositories.ReporterRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	declarations repositories.DeclarationRepository,
	reporter repositories.ReporterRepository,
) *ListCommand {
	return &ListCommand{declarations: declarations, reporter: reporter}
}

// Execute parses the README and reports every dependency in declaration order.
func (it *ListCommand) Execute(_ context.Context, opts ListOptions) ([]entities.Dependency, error) {
	deps, err := loadDependencies(it.declarations, opts.ReadmePath)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = entities.OutputText
	}

	if output == entities.OutputText {
		it.reporter.Section("Dependencies")
	}
	if reportErr := it.reporter.Dependencies(deps, output); reportErr != nil {
		return nil, reportErr
	}
	return deps, nil
}

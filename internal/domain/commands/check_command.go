package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) ([]entities.CheckResult, error)
}

// CheckOptions holds runtime options for a presence/version check.
type CheckOptions struct {
	RepoDir    string // directory of the active repository
	ReadmePath string
}

// CheckCommand verifies that every dependency is present and recent enough.
// Version problems are reported and processing continues; missing
// dependencies are reported too and returned as one *entities.NotFoundError
// once all dependencies were visited.
type CheckCommand struct {
	declarations repositories.DeclarationRepository
	versions     repositories.VersionSourceRepository
	reporter     repositories.ReporterRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	declarations repositories.DeclarationRepository,
	versions repositories.VersionSourceRepository,
	reporter repositories.ReporterRepository,
) *CheckCommand {
	return &CheckCommand{declarations: declarations, versions: versions, reporter: reporter}
}

// Execute checks each dependency in declaration order.
func (it *CheckCommand) Execute(ctx context.Context, opts CheckOptions) ([]entities.CheckResult, error) {
	deps, err := loadDependencies(it.declarations, opts.ReadmePath)
	if err != nil {
		return nil, err
	}

	it.reporter.Section("Dependency Check")

	results := make([]entities.CheckResult, 0, len(deps))
	var missing []string
	for _, dep := range deps {
		it.reporter.Dependency(dep)

		dir := dependencyDir(opts.RepoDir, dep)
		info, statErr := os.Stat(dir)
		var result entities.CheckResult
		switch {
		case statErr == nil && info.IsDir():
			result = checkCompatibility(ctx, it.versions, dir, dep)
		case statErr == nil || errors.Is(statErr, fs.ErrNotExist):
			result = entities.CheckResult{
				Dependency: dep,
				Status:     entities.StatusMissing,
				Err:        &entities.NotFoundError{Paths: []string{dep.RelativePath}},
			}
			missing = append(missing, dep.RelativePath)
		default:
			return results, fmt.Errorf("failed to inspect %s: %w", dir, statErr)
		}

		it.reporter.CheckResult(result)
		results = append(results, result)
	}

	if len(missing) > 0 {
		return results, &entities.NotFoundError{Paths: missing}
	}
	return results, nil
}

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// loadDependencies reads the README at readmePath and parses its dependencies section.
func loadDependencies(
	declarations repositories.DeclarationRepository,
	readmePath string,
) ([]entities.Dependency, error) {
	lines, err := declarations.ReadLines(readmePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", readmePath, err)
	}

	deps, err := entities.ParseDeclaration(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependencies in %s: %w", readmePath, err)
	}

	logger.Debugf("Parsed %d dependencies from %s", len(deps), readmePath)
	return deps, nil
}

// dependencyDir is where dep lives on disk for the repository at repoDir.
func dependencyDir(repoDir string, dep entities.Dependency) string {
	return filepath.Join(repoDir, filepath.FromSlash(dep.RelativePath))
}

// checkCompatibility compares the version checked out in dir against dep's minimum.
func checkCompatibility(
	ctx context.Context,
	versions repositories.VersionSourceRepository,
	dir string,
	dep entities.Dependency,
) entities.CheckResult {
	found, err := versions.CurrentVersion(ctx, dir)
	if err != nil {
		return entities.CheckResult{Dependency: dep, Status: entities.StatusUnknown, Err: err}
	}

	required, err := dep.RequiredVersion()
	if err != nil {
		return entities.CheckResult{
			Dependency: dep,
			Status:     entities.StatusUnknown,
			Found:      &found,
			Err:        fmt.Errorf("invalid minimum version for %s: %w", dep.Name, err),
		}
	}

	return entities.EvaluateCompatibility(dep, required, found)
}

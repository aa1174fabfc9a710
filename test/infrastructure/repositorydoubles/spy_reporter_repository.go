//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// SpyReporterRepository implements repositories.ReporterRepository and
// records everything it is asked to print.
type SpyReporterRepository struct {
	Sections     []string
	Listed       []entities.Dependency
	ListFormat   string
	ListErr      error
	Headers      []string
	Results      []entities.CheckResult
	SkippedNames []string
	CheckingOuts []string // urls
	DryRuns      int
	Revisions    []string
	Warnings     []string
}

var _ repositories.ReporterRepository = (*SpyReporterRepository)(nil)

func (s *SpyReporterRepository) Section(title string) { s.Sections = append(s.Sections, title) }

func (s *SpyReporterRepository) Dependencies(deps []entities.Dependency, format string) error {
	s.Listed = append(s.Listed, deps...)
	s.ListFormat = format
	return s.ListErr
}

func (s *SpyReporterRepository) Dependency(dep entities.Dependency) {
	s.Headers = append(s.Headers, dep.Name)
}

func (s *SpyReporterRepository) CheckResult(result entities.CheckResult) {
	s.Results = append(s.Results, result)
}

func (s *SpyReporterRepository) Skipped(dep entities.Dependency) {
	s.SkippedNames = append(s.SkippedNames, dep.Name)
}

func (s *SpyReporterRepository) CheckingOut(_ entities.Dependency, url string, dryRun bool) {
	s.CheckingOuts = append(s.CheckingOuts, url)
	if dryRun {
		s.DryRuns++
	}
}

func (s *SpyReporterRepository) CheckedOut(_ entities.Dependency, revision string) {
	s.Revisions = append(s.Revisions, revision)
}

func (s *SpyReporterRepository) Warning(message string) { s.Warnings = append(s.Warnings, message) }

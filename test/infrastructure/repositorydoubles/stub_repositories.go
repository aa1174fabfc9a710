//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path/filepath"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// StubDeclarationRepository implements repositories.DeclarationRepository.
type StubDeclarationRepository struct {
	Lines     []string
	ReadErr   error
	ReadPaths []string
}

var _ repositories.DeclarationRepository = (*StubDeclarationRepository)(nil)

func (s *StubDeclarationRepository) ReadLines(path string) ([]string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	return s.Lines, s.ReadErr
}

// StubVersionSourceRepository implements repositories.VersionSourceRepository.
// Versions is keyed by the base name of the directory asked for.
type StubVersionSourceRepository struct {
	Versions map[string]entities.Version
	Errs     map[string]error
}

var _ repositories.VersionSourceRepository = (*StubVersionSourceRepository)(nil)

func (s *StubVersionSourceRepository) CurrentVersion(_ context.Context, dir string) (entities.Version, error) {
	name := filepath.Base(dir)
	if err, ok := s.Errs[name]; ok {
		return entities.Version{}, err
	}
	if v, ok := s.Versions[name]; ok {
		return v, nil
	}
	return entities.Version{}, &entities.NoTagError{Path: dir}
}

// StubURLRewriterRepository rewrites From to To and leaves other URLs alone.
type StubURLRewriterRepository struct {
	RewriterName string
	From         string
	To           string
}

var _ repositories.URLRewriterRepository = (*StubURLRewriterRepository)(nil)

func (s *StubURLRewriterRepository) Name() string { return s.RewriterName }

func (s *StubURLRewriterRepository) Rewrite(url string) string {
	if url == s.From {
		return s.To
	}
	return url
}

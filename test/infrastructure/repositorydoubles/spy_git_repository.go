//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// SubmoduleCall records a single invocation of AddSubmodule.
type SubmoduleCall struct {
	URL       string
	ParentDir string
	Name      string
}

// CheckoutCall records a single invocation of Checkout.
type CheckoutCall struct {
	Dir      string
	Revision string
}

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
// Clone and AddSubmodule create the target directory so that follow-up
// filesystem checks see the dependency.
type SpyGitRepository struct {
	// --- Clone ---
	CloneErr error
	// spy: url -> dir
	Clones map[string]string
	// spy: clone order
	ClonedURLs []string

	// --- AddSubmodule ---
	SubmoduleErr   error
	SubmoduleCalls []SubmoduleCall

	// --- Checkout ---
	CheckoutErr   error
	CheckoutCalls []CheckoutCall

	// --- DescribeTags ---
	Description string
	DescribeErr error

	// --- Tags ---
	TagList []string
	TagsErr error
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) Clone(_ context.Context, url, dir string) error {
	if s.Clones == nil {
		s.Clones = make(map[string]string)
	}
	s.Clones[url] = dir
	s.ClonedURLs = append(s.ClonedURLs, url)
	if s.CloneErr != nil {
		return s.CloneErr
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *SpyGitRepository) AddSubmodule(_ context.Context, url, parentDir, name string) error {
	s.SubmoduleCalls = append(s.SubmoduleCalls, SubmoduleCall{URL: url, ParentDir: parentDir, Name: name})
	if s.SubmoduleErr != nil {
		return s.SubmoduleErr
	}
	return os.MkdirAll(filepath.Join(parentDir, name), 0o755)
}

func (s *SpyGitRepository) Checkout(_ context.Context, dir, revision string) error {
	s.CheckoutCalls = append(s.CheckoutCalls, CheckoutCall{Dir: dir, Revision: revision})
	return s.CheckoutErr
}

func (s *SpyGitRepository) DescribeTags(_ context.Context, _ string) (string, error) {
	return s.Description, s.DescribeErr
}

func (s *SpyGitRepository) Tags(_ context.Context, _ string) ([]string, error) {
	return s.TagList, s.TagsErr
}

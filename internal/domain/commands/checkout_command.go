package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitdeps/internal/infrastructure/repositories"
)

const dirMode = 0o755

// Checkout is the interface for the checkout command.
type Checkout interface {
	Execute(ctx context.Context, opts CheckoutOptions) error
}

// CheckoutOptions holds runtime options for a checkout run.
type CheckoutOptions struct {
	RepoDir           string // directory of the active repository
	ReadmePath        string
	Mode              entities.CheckoutMode
	AsSubmodule       bool
	DryRun            bool
	Rewrites          []entities.RewriteRule // appended after the built-in rewriters
	DisabledRewriters []string
}

// CheckoutCommand fetches every dependency that is not yet present, one at a
// time in declaration order. Dependencies already on disk are only checked.
// The first git failure aborts the run.
type CheckoutCommand struct {
	declarations repositories.DeclarationRepository
	git          repositories.GitRepository
	versions     repositories.VersionSourceRepository
	rewriters    *infraRepos.RewriterRegistry
	reporter     repositories.ReporterRepository
}

// NewCheckoutCommand creates a new CheckoutCommand.
func NewCheckoutCommand(
	declarations repositories.DeclarationRepository,
	git repositories.GitRepository,
	versions repositories.VersionSourceRepository,
	rewriters *infraRepos.RewriterRegistry,
	reporter repositories.ReporterRepository,
) *CheckoutCommand {
	return &CheckoutCommand{
		declarations: declarations,
		git:          git,
		versions:     versions,
		rewriters:    rewriters,
		reporter:     reporter,
	}
}

// Execute checks out all dependencies declared in the README.
func (it *CheckoutCommand) Execute(ctx context.Context, opts CheckoutOptions) error {
	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	deps, err := loadDependencies(it.declarations, opts.ReadmePath)
	if err != nil {
		return err
	}

	chain := it.rewriters.Chain(opts.Rewrites, opts.DisabledRewriters)
	logger.Debugf("Checkout mode %s, %d URL rewriters, submodules: %v", opts.Mode, len(chain), opts.AsSubmodule)

	it.reporter.Section("Checkout")
	for _, dep := range deps {
		it.reporter.Dependency(dep)
		if checkoutErr := it.checkoutDependency(ctx, repoDir, dep, chain, opts); checkoutErr != nil {
			return fmt.Errorf("failed to check out %s: %w", dep.Name, checkoutErr)
		}
	}
	return nil
}

func (it *CheckoutCommand) checkoutDependency(
	ctx context.Context,
	repoDir string,
	dep entities.Dependency,
	chain []repositories.URLRewriterRepository,
	opts CheckoutOptions,
) error {
	dir := dependencyDir(repoDir, dep)

	_, statErr := os.Stat(dir)
	if statErr == nil {
		it.reporter.Skipped(dep)
		it.reporter.CheckResult(checkCompatibility(ctx, it.versions, dir, dep))
		return nil
	}
	if !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("failed to inspect %s: %w", dir, statErr)
	}

	url := rewriteURL(chain, dep.URL)
	it.reporter.CheckingOut(dep, url, opts.DryRun)
	if opts.DryRun {
		return nil
	}

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, dirMode); err != nil {
		return fmt.Errorf("failed to create %s: %w", parent, err)
	}

	if opts.AsSubmodule {
		if err := it.git.AddSubmodule(ctx, url, parent, dep.Name); err != nil {
			return err
		}
	} else {
		if err := it.git.Clone(ctx, url, dir); err != nil {
			return err
		}
	}

	return it.selectRevision(ctx, dir, dep, opts.Mode)
}

// selectRevision moves a freshly fetched dependency to the revision the mode asks for.
func (it *CheckoutCommand) selectRevision(
	ctx context.Context,
	dir string,
	dep entities.Dependency,
	mode entities.CheckoutMode,
) error {
	if mode == entities.TrackBranch {
		return nil
	}

	tags, err := it.git.Tags(ctx, dir)
	if err != nil {
		return err
	}

	var revision string
	switch mode {
	case entities.ExactVersion:
		revision = entities.MatchingVersionTag(tags, dep.MinVersion)
	case entities.LatestTag:
		latest, _, ok := entities.HighestVersionTag(tags)
		if !ok {
			it.reporter.Warning(fmt.Sprintf("no version tag found for %s, staying on the default branch", dep.Name))
			return nil
		}
		revision = latest
	default:
		return fmt.Errorf("unsupported checkout mode: %s", mode)
	}

	if checkoutErr := it.git.Checkout(ctx, dir, revision); checkoutErr != nil {
		return checkoutErr
	}
	it.reporter.CheckedOut(dep, revision)
	return nil
}

// rewriteURL passes url through every rewriter in order.
func rewriteURL(chain []repositories.URLRewriterRepository, url string) string {
	for _, rewriter := range chain {
		rewritten := rewriter.Rewrite(url)
		if rewritten != url {
			logger.Debugf("[%s] Rewrote %s to %s", rewriter.Name(), url, rewritten)
		}
		url = rewritten
	}
	return url
}

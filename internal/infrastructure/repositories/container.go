package repositories

import (
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitdeps/internal/domain/repositories"
	"github.com/rios0rios0/gitdeps/internal/infrastructure/repositories/console"
	"github.com/rios0rios0/gitdeps/internal/infrastructure/repositories/file"
	gitRepo "github.com/rios0rios0/gitdeps/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/gitdeps/internal/infrastructure/repositories/rewriters"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register rewriter registry with all built-in URL rewriters
	if err := container.Provide(func(rules entities.BuiltinRewriteRules) *RewriterRegistry {
		reg := NewRewriterRegistry()
		for _, rule := range rules {
			reg.Register(rewriters.NewRuleRewriter(rule))
		}
		return reg
	}); err != nil {
		return err
	}

	// Register concrete repositories and bind them to their domain interfaces
	if err := container.Provide(func() domainRepos.GitRepository {
		return gitRepo.NewGoGitRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(git domainRepos.GitRepository) domainRepos.VersionSourceRepository {
		return gitRepo.NewVersionSourceRepository(git)
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.DeclarationRepository {
		return file.NewReadmeDeclarationRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ReporterRepository {
		return console.NewReporter()
	}); err != nil {
		return err
	}

	return nil
}

package repositories

import (
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitdeps/internal/domain/repositories"
	"github.com/rios0rios0/gitdeps/internal/infrastructure/repositories/rewriters"
)

// RewriterRegistry manages the built-in URL rewriters in registration order.
type RewriterRegistry struct {
	rewriters map[string]domainRepos.URLRewriterRepository
	order     []string
}

// NewRewriterRegistry creates an empty rewriter registry.
func NewRewriterRegistry() *RewriterRegistry {
	return &RewriterRegistry{
		rewriters: make(map[string]domainRepos.URLRewriterRepository),
	}
}

// Register adds a rewriter under its name. Registering a name twice replaces
// the rewriter but keeps its original position.
func (r *RewriterRegistry) Register(rw domainRepos.URLRewriterRepository) {
	if _, exists := r.rewriters[rw.Name()]; !exists {
		r.order = append(r.order, rw.Name())
	}
	r.rewriters[rw.Name()] = rw
}

// Get returns the rewriter with the given name, or nil if not registered.
func (r *RewriterRegistry) Get(name string) domainRepos.URLRewriterRepository {
	return r.rewriters[name]
}

// All returns every registered rewriter in registration order.
func (r *RewriterRegistry) All() []domainRepos.URLRewriterRepository {
	result := make([]domainRepos.URLRewriterRepository, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.rewriters[name])
	}
	return result
}

// Names returns the registered rewriter names in registration order.
func (r *RewriterRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Chain builds the rewrite chain for one run: the registered rewriters not
// listed in disabled, followed by the configured rules.
func (r *RewriterRegistry) Chain(
	rules []entities.RewriteRule,
	disabled []string,
) []domainRepos.URLRewriterRepository {
	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}

	chain := make([]domainRepos.URLRewriterRepository, 0, len(r.order)+len(rules))
	for _, rw := range r.All() {
		if !skip[rw.Name()] {
			chain = append(chain, rw)
		}
	}
	for _, rule := range rules {
		chain = append(chain, rewriters.NewRuleRewriter(rule))
	}
	return chain
}

package entities

import (
	"go.uber.org/dig"
)

// BuiltinRewriteRules are the URL rewrites registered for every run. Users
// can disable them by name and append their own rules in the config file.
type BuiltinRewriteRules []RewriteRule

// RegisterProviders registers all entity providers with the DIG container.
// Settings depend on the repository path, so controllers load them per run.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() BuiltinRewriteRules {
		return BuiltinRewriteRules{PSIGFARewriteRule}
	})
}

package repositories

// URLRewriterRepository rewrites a remote URL before it is fetched. Rewriters
// form a chain: each one sees the output of the previous one.
type URLRewriterRepository interface {
	// Name returns the rewriter identifier (e.g. "psi-gfa-ssh").
	Name() string

	// Rewrite returns url unchanged when the rewriter does not apply.
	Rewrite(url string) string
}

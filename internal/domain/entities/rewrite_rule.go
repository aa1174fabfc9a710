package entities

import "strings"

// PSIGFARewriteRule turns PSI GFA HTTPS URLs into their SSH form.
//
//nolint:gochecknoglobals // built-in rule
var PSIGFARewriteRule = RewriteRule{
	Name:        "psi-gfa-ssh",
	Prefix:      "https://git.psi.ch/GFA",
	Replacement: "git@git.psi.ch:GFA",
	Suffix:      ".git",
}

// RewriteRule rewrites remote URLs starting with Prefix before they are fetched.
type RewriteRule struct {
	Name        string `mapstructure:"name"`
	Prefix      string `mapstructure:"prefix"`
	Replacement string `mapstructure:"replacement"`
	Suffix      string `mapstructure:"suffix"` // appended once, unless already present
}

// Rewrite returns url unchanged when it does not start with the rule's prefix.
func (r RewriteRule) Rewrite(url string) string {
	if r.Prefix == "" || !strings.HasPrefix(url, r.Prefix) {
		return url
	}
	rewritten := r.Replacement + strings.TrimPrefix(url, r.Prefix)
	if r.Suffix != "" && !strings.HasSuffix(rewritten, r.Suffix) {
		rewritten += r.Suffix
	}
	return rewritten
}

// RuleName names the rule after its prefix when no name was configured.
func (r RewriteRule) RuleName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Prefix
}

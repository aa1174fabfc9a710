package rewriters

import (
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

// RuleRewriter adapts an entities.RewriteRule to the rewriter interface.
type RuleRewriter struct {
	rule entities.RewriteRule
}

var _ repositories.URLRewriterRepository = (*RuleRewriter)(nil)

// NewRuleRewriter wraps rule.
func NewRuleRewriter(rule entities.RewriteRule) *RuleRewriter {
	return &RuleRewriter{rule: rule}
}

func (it *RuleRewriter) Name() string { return it.rule.RuleName() }

func (it *RuleRewriter) Rewrite(url string) string { return it.rule.Rewrite(url) }

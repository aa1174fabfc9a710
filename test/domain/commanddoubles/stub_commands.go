//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitdeps/internal/domain/commands"
	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Dependencies     []entities.Dependency
	LastOpts         commands.ListOptions
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	opts commands.ListOptions,
) ([]entities.Dependency, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Dependencies, s.ExecuteErr
}

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.CheckResult
	LastOpts         commands.CheckOptions
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(
	_ context.Context,
	opts commands.CheckOptions,
) ([]entities.CheckResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}

// StubCheckoutCommand is a stub implementation of commands.Checkout.
type StubCheckoutCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.CheckoutOptions
}

var _ commands.Checkout = (*StubCheckoutCommand)(nil)

func (s *StubCheckoutCommand) Execute(
	_ context.Context,
	opts commands.CheckoutOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
)

const (
	defaultDependencyName = "test-dependency"
	defaultDependencyURL  = "https://example.com/test-dependency"
	defaultRelativePath   = "../test-dependency"
	defaultMinVersion     = "1.0.0"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name         string
	url          string
	relativePath string
	minVersion   string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		name:         defaultDependencyName,
		url:          defaultDependencyURL,
		relativePath: defaultRelativePath,
		minVersion:   defaultMinVersion,
	}
}

// WithName sets the dependency name and, unless set explicitly later, its path.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	b.relativePath = "../" + name
	return b
}

func (b *DependencyBuilder) WithURL(url string) *DependencyBuilder {
	b.url = url
	return b
}

// WithRelativePath sets the slash separated path relative to the active repository.
func (b *DependencyBuilder) WithRelativePath(path string) *DependencyBuilder {
	b.relativePath = path
	return b
}

func (b *DependencyBuilder) WithMinVersion(version string) *DependencyBuilder {
	b.minVersion = version
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		Name:         b.name,
		URL:          b.url,
		RelativePath: b.relativePath,
		MinVersion:   b.minVersion,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = defaultDependencyName
	b.url = defaultDependencyURL
	b.relativePath = defaultRelativePath
	b.minVersion = defaultMinVersion
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		url:          b.url,
		relativePath: b.relativePath,
		minVersion:   b.minVersion,
	}
}

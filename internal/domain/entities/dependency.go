package entities

import "path"

// NoVersionRequired is the minimum version recorded for the active repository.
const NoVersionRequired = "none"

// Dependency is a repository the active repository requires, located
// relative to the active repository's own directory.
type Dependency struct {
	Name         string `yaml:"name"`          // Library name as declared
	URL          string `yaml:"url"`           // Remote git URL, before rewriting
	RelativePath string `yaml:"relative_path"` // Slash separated, relative to the active repository
	MinVersion   string `yaml:"min_version"`   // Declared minimum version, unparsed
}

// ParentDir returns the directory the dependency is checked out into.
func (d Dependency) ParentDir() string {
	return path.Dir(d.RelativePath)
}

// RequiredVersion parses the declared minimum version.
func (d Dependency) RequiredVersion() (Version, error) {
	return ParseVersion(d.MinVersion)
}

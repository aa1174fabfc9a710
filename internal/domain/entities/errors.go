package entities

import (
	"fmt"
	"strings"
)

// ParseError is returned when a version string is malformed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "illegal version number: " + e.Input
}

// DeclarationError is returned when the dependencies section of a README
// cannot be turned into a dependency list. Line is 1-based; zero means the
// problem is not tied to a single line.
type DeclarationError struct {
	Line   int
	Reason string
}

func (e *DeclarationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// NotFoundError is returned when one or more dependencies are not present on disk.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	if len(e.Paths) == 1 {
		return fmt.Sprintf("dependency %s does not exist", e.Paths[0])
	}
	return fmt.Sprintf("%d dependencies do not exist: %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

// NoTagError is returned when a checked out repository has no reachable version tag.
type NoTagError struct {
	Path string
}

func (e *NoTagError) Error() string {
	return "no version tag found in " + e.Path
}

// VersionMismatchError describes an installed version that does not satisfy
// the declared minimum. Major is set when only the major version is ahead.
type VersionMismatchError struct {
	Required Version
	Found    Version
	Major    bool
}

func (e *VersionMismatchError) Error() string {
	if e.Major {
		return fmt.Sprintf("Major mismatch, maybe incompatible. Required %s, Found %s", e.Required, e.Found)
	}
	return fmt.Sprintf("Version lower than required. Required %s, Found %s", e.Required, e.Found)
}

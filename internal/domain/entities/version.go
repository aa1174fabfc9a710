package entities

import (
	"fmt"
	"strconv"
	"strings"
)

const versionComponents = 3

// Version is a comparable major.minor.bugfix triple.
type Version struct {
	Major  int
	Minor  int
	Bugfix int
}

// ParseVersion parses a dot-separated version string. At least three
// integer components are required; anything after the third is ignored.
func ParseVersion(raw string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	if len(parts) < versionComponents {
		return Version{}, &ParseError{Input: raw}
	}

	var numbers [versionComponents]int
	for i := range versionComponents {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, &ParseError{Input: raw}
		}
		numbers[i] = n
	}

	return Version{Major: numbers[0], Minor: numbers[1], Bugfix: numbers[2]}, nil
}

// ParseTagVersion parses a git tag name, accepting an optional "v" prefix.
func ParseTagVersion(tag string) (Version, error) {
	trimmed := strings.TrimSpace(tag)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "v"), "V")
	v, err := ParseVersion(trimmed)
	if err != nil {
		return Version{}, &ParseError{Input: tag}
	}
	return v, nil
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return sign(v.Major - other.Major)
	case v.Minor != other.Minor:
		return sign(v.Minor - other.Minor)
	default:
		return sign(v.Bugfix - other.Bugfix)
	}
}

func (v Version) LessThan(other Version) bool    { return v.Compare(other) < 0 }
func (v Version) GreaterThan(other Version) bool { return v.Compare(other) > 0 }
func (v Version) Equal(other Version) bool       { return v.Compare(other) == 0 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

package entities

// HighestVersionTag returns the tag carrying the greatest version. Tags that
// do not parse as versions (e.g. "nightly") are ignored.
func HighestVersionTag(tags []string) (string, Version, bool) {
	var (
		best    string
		bestVer Version
		found   bool
	)
	for _, tag := range tags {
		v, err := ParseTagVersion(tag)
		if err != nil {
			continue
		}
		if !found || v.GreaterThan(bestVer) {
			best, bestVer, found = tag, v, true
		}
	}
	return best, bestVer, found
}

// MatchingVersionTag returns the tag naming version: the exact spelling when
// present, otherwise the first tag that parses to the same version ("v1.2.0"
// for "1.2.0"). It falls back to version itself.
func MatchingVersionTag(tags []string, version string) string {
	wanted, err := ParseVersion(version)
	if err != nil {
		return version
	}

	match := ""
	for _, tag := range tags {
		if tag == version {
			return tag
		}
		if match != "" {
			continue
		}
		if v, parseErr := ParseTagVersion(tag); parseErr == nil && v.Equal(wanted) {
			match = tag
		}
	}
	if match != "" {
		return match
	}
	return version
}

package repositories

import "github.com/rios0rios0/gitdeps/internal/domain/entities"

// ReporterRepository prints the user-facing report of an action. Diagnostics
// go to the logger; this is what the user asked to see.
type ReporterRepository interface {
	// Section prints a heading such as "*** Checkout ***".
	Section(title string)

	// Dependencies prints the dependency listing as entities.OutputText or entities.OutputYAML.
	Dependencies(deps []entities.Dependency, format string) error

	// Dependency announces that the following lines concern dep.
	Dependency(dep entities.Dependency)

	// CheckResult prints the outcome of a presence/version check.
	CheckResult(result entities.CheckResult)

	// Skipped reports that dep is already present and will only be checked.
	Skipped(dep entities.Dependency)

	// CheckingOut reports that dep is about to be fetched from url.
	CheckingOut(dep entities.Dependency, url string, dryRun bool)

	// CheckedOut reports the revision dep was moved to after fetching.
	CheckedOut(dep entities.Dependency, revision string)

	// Warning prints a non-fatal problem.
	Warning(message string)
}

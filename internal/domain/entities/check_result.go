package entities

// CheckStatus classifies the state of one dependency on disk.
type CheckStatus int

const (
	StatusOK CheckStatus = iota
	StatusMajorMismatch
	StatusBelowMinimum
	StatusMissing
	StatusUnknown
)

func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMajorMismatch:
		return "major-mismatch"
	case StatusBelowMinimum:
		return "below-minimum"
	case StatusMissing:
		return "missing"
	case StatusUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// CheckResult is the outcome of checking one dependency.
type CheckResult struct {
	Dependency Dependency
	Status     CheckStatus
	Found      *Version // nil unless a version could be read
	Err        error    // reason for any status but StatusOK
}

// EvaluateCompatibility applies the compatibility rule: a newer major version
// only warrants a warning, anything lower than required is an error.
func EvaluateCompatibility(dep Dependency, required, found Version) CheckResult {
	result := CheckResult{Dependency: dep, Status: StatusOK, Found: &found}

	switch {
	case found.Major > required.Major:
		result.Status = StatusMajorMismatch
		result.Err = &VersionMismatchError{Required: required, Found: found, Major: true}
	case found.LessThan(required):
		result.Status = StatusBelowMinimum
		result.Err = &VersionMismatchError{Required: required, Found: found}
	}
	return result
}

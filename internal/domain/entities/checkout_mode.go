package entities

import "fmt"

// CheckoutMode selects which revision of a freshly fetched dependency is checked out.
type CheckoutMode int

const (
	// LatestTag checks out the tag carrying the highest version.
	LatestTag CheckoutMode = iota
	// TrackBranch stays on the remote's default branch.
	TrackBranch
	// ExactVersion checks out the tag named by the declared minimum version.
	ExactVersion
)

var checkoutModeNames = map[CheckoutMode]string{ //nolint:gochecknoglobals // lookup table
	TrackBranch:  "master",
	LatestTag:    "latest_release",
	ExactVersion: "specified_version",
}

// CheckoutModeNames lists the accepted textual modes in help order.
func CheckoutModeNames() []string {
	return []string{
		checkoutModeNames[TrackBranch],
		checkoutModeNames[LatestTag],
		checkoutModeNames[ExactVersion],
	}
}

// ParseCheckoutMode converts the CLI/config spelling of a mode.
func ParseCheckoutMode(raw string) (CheckoutMode, error) {
	for mode, name := range checkoutModeNames {
		if name == raw {
			return mode, nil
		}
	}
	return LatestTag, fmt.Errorf("illegal mode: %q (expected one of %v)", raw, CheckoutModeNames())
}

func (m CheckoutMode) String() string {
	if name, ok := checkoutModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CheckoutMode(%d)", int(m))
}

// UnmarshalText lets config decoding share ParseCheckoutMode.
func (m *CheckoutMode) UnmarshalText(text []byte) error {
	mode, err := ParseCheckoutMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

package intake

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// CustomerMode is the "existing" vs "new" customer flag chosen on the first
// wizard page. It decides whether the intake binds to an already known
// customer record or guards against creating a duplicate one.
type CustomerMode int

const (
	// ModeUnknown means the user has not chosen yet. The wizard cannot leave
	// the first page while the mode is unknown.
	ModeUnknown CustomerMode = iota

	// ModeNew creates a fresh customer record at finalization. Forward
	// transitions run the exhaustive duplicate guard in this mode.
	ModeNew

	// ModeExisting binds the session to a customer found via identity search.
	ModeExisting
)

// getModeStrings returns a map of CustomerMode values to their string representations.
func getModeStrings() map[CustomerMode]string {
	return map[CustomerMode]string{
		ModeUnknown:  "Unknown",
		ModeNew:      "New",
		ModeExisting: "Existing",
	}
}

// Validate checks if the mode has been chosen.
func (m CustomerMode) Validate() error {
	if m != ModeNew && m != ModeExisting {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer mode is invalid",
			fmt.Errorf("%d is not a valid customer mode", m),
		)
	}
	return nil
}

// String returns the human-readable name of the mode.
func (m CustomerMode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

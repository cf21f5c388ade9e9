package draft

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// Status represents the lifecycle state of a draft.
//
// State transitions:
//
//	Active ──> Superseded
//
// Active drafts accept snapshot replacements. Superseded is a final state
// reached when the intake was finalized into a real order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the initial status: the wizard session is still in progress
	// and keeps overwriting the stored snapshot.
	Active

	// Superseded means a final order was created from this draft. The draft
	// is kept for traceability and no longer accepts updates.
	Superseded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Active:     "Active",
		Superseded: "Superseded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:     "Active",
		Superseded: "Superseded",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Supersede transitions the status to Superseded.
//
// Valid transitions:
//   - Active -> Superseded
//
// A superseded draft cannot be superseded again.
func (s Status) Supersede() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to supersede", s.String()),
		)
	}
	return Superseded, nil
}

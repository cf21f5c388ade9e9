package intake

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// Step represents the wizard page the form is currently on.
// It implements a state machine with defined transitions so the wizard
// always moves one page at a time.
//
// State transitions:
//
//	ClientType <-> Identity <-> Address <-> Review
//
// Forward moves are gated by validation and draft persistence in the wizard
// controller; backward moves are always allowed. Submission from Review is a
// separate operation, not a step transition.
type Step int

const (
	// UnknownStep represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	UnknownStep Step = iota

	// StepClientType is the first page where the user chooses between an
	// existing customer and a new one.
	StepClientType

	// StepIdentity collects names, identification number, phone and email.
	StepIdentity

	// StepAddress collects the destination street, city, province and
	// delivery instructions.
	StepAddress

	// StepReview is the final page summarizing the form before submission.
	StepReview
)

// getStepStrings returns a map of Step values to their string representations.
func getStepStrings() map[Step]string {
	return map[Step]string{
		UnknownStep:    "Unknown",
		StepClientType: "ClientType",
		StepIdentity:   "Identity",
		StepAddress:    "Address",
		StepReview:     "Review",
	}
}

// getValidStepStrings returns a map of only valid Step values.
func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // UnknownStep is intentionally excluded as it's invalid
	return map[Step]string{
		StepClientType: "ClientType",
		StepIdentity:   "Identity",
		StepAddress:    "Address",
		StepReview:     "Review",
	}
}

// Validate checks if the Step value is one of the four wizard pages.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the human-readable name of the step.
// Implements fmt.Stringer and is safe to call on any Step value.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the step that follows s.
//
// Valid transitions:
//   - ClientType -> Identity
//   - Identity -> Address
//   - Address -> Review
//
// Review has no next step; leaving it happens through submission.
func (s Step) Next() (Step, error) {
	switch s {
	case StepClientType:
		return StepIdentity, nil
	case StepIdentity:
		return StepAddress, nil
	case StepAddress:
		return StepReview, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"step is invalid",
			fmt.Errorf("%s has no next step", s.String()),
		)
	}
}

// Prev returns the step that precedes s.
// ClientType is the first page and has no previous step.
func (s Step) Prev() (Step, error) {
	switch s {
	case StepIdentity:
		return StepClientType, nil
	case StepAddress:
		return StepIdentity, nil
	case StepReview:
		return StepAddress, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"step is invalid",
			fmt.Errorf("%s has no previous step", s.String()),
		)
	}
}

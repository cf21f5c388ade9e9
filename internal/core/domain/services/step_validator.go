package services

import (
	"intake/internal/core/domain/model/intake"
)

// StepValidator is the validation engine of the wizard. Given a form and a
// target step it returns the errors for exactly the fields relevant to that
// step, using the sealed per-step schemas.
//
// The validator is pure and deterministic: identical inputs always yield an
// identical ValidationErrorSet, it performs no I/O and never panics on
// incomplete input. It is safe to re-invoke on every keystroke; callers
// discard the previous error for an edited field and immediately re-validate.
//
// Example:
//
//	validator := NewStepValidator()
//	result := validator.ValidateStep(form, intake.StepIdentity)
//	if !result.IsEmpty() {
//	    // block the forward transition, surface result per field
//	}
type StepValidator struct{}

// NewStepValidator creates the validation engine. It carries no state.
func NewStepValidator() StepValidator {
	return StepValidator{}
}

// ValidateStep checks the fields of the target step. Steps without a schema
// of their own (Review, invalid values) yield an empty set: no fields of that
// step can fail.
func (v StepValidator) ValidateStep(form intake.FormState, step intake.Step) intake.ValidationErrorSet {
	schema, ok := intake.SchemaForStep(step)
	if !ok {
		return intake.ValidationErrorSet{}
	}
	return schema.Check(form)
}

// ValidateForm checks every step that has a schema and merges the results.
// Used for the full-form invariant before submission.
func (v StepValidator) ValidateForm(form intake.FormState) intake.ValidationErrorSet {
	merged := intake.ValidationErrorSet{}
	for _, step := range []intake.Step{intake.StepClientType, intake.StepIdentity, intake.StepAddress} {
		for field, message := range v.ValidateStep(form, step) {
			merged[field] = message
		}
	}
	return merged
}

// Package intake provides the domain model for the guided order intake workflow.
// It implements the wizard's mutable form record together with the value objects
// that gate its step transitions.
//
// The package includes:
//   - FormState: The single mutable record one wizard session edits
//   - Step: A state machine over the wizard pages (ClientType -> Identity -> Address -> Review)
//   - CustomerMode: The "new" vs "existing" customer flag chosen on the first page
//   - StepSchema: A sealed sum type with exactly one validation schema per step
//   - ValidationErrorSet / DuplicateErrorSet: Ephemeral field-keyed error maps
//
// Key business rules:
//   - Forward step transitions require an empty ValidationErrorSet for the current step
//   - Backward transitions are always permitted
//   - Error sets are recomputed on every relevant input change and never persisted
package intake

// Package services provides domain services for the intake workflow.
//
// The package includes:
//   - StepValidator: The pure validation engine checking field-level and
//     step-level completeness of an in-progress form against the per-step
//     schemas
//
// Domain services here are free of I/O; everything store-bound lives in the
// application layer.
package services

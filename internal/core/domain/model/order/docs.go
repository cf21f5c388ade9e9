// Package order provides the final order aggregate: the immutable,
// fully-validated record created when a wizard intake is submitted.
//
// Key business rules:
//   - A final order always references the customer it belongs to and the
//     draft it superseded, so the intake trail stays reconstructable
//   - Final orders never change after creation; corrections happen through
//     new orders, not mutation
package order

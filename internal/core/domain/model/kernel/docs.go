// Package kernel provides shared value objects used across the intake domain.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business meaning of their own; they exist so aggregates
// and commands share one validated representation of common values.
package kernel

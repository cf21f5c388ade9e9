// Package customer provides the canonical customer entity of the intake
// system. A customer is keyed by a generated UUID with a natural deduplication
// key on the national id / passport number; email and phone are expected to be
// unique as well.
//
// The package includes:
//   - Customer: The aggregate root holding identity, contact data and an
//     optional saved delivery address
//   - Address: A value object for the saved delivery destination
//
// Customers are looked up, never mutated, during duplicate checking. They are
// created or updated only when an intake is finalized.
package customer

package ports

import (
	"context"

	"intake/internal/core/domain/model/customer"
	"intake/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// The lookup methods back both resolver paths: the single-field identity
// search and the exhaustive duplicate guard. All lookups are exact-match.
type CustomerRepository interface {
	// Add persists a new customer aggregate.
	// Returns a conflict error when the identification, email or phone is
	// already taken by another record.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByIdentification retrieves a customer by national id / passport,
	// the primary deduplication key. Returns ObjectNotFoundError on no match.
	GetByIdentification(ctx context.Context, identification string) (*customer.Customer, error)

	// GetByEmail retrieves a customer by exact email match.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// GetByPhone retrieves a customer by exact phone match.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}

package ports

import (
	"context"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for final order aggregates.
// Final orders are append-only; there is no update method.
type OrderRepository interface {
	// Add persists a new final order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a final order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByDraftID retrieves the final order that superseded the given draft,
	// if one exists. Used to keep finalization retries idempotent.
	GetByDraftID(ctx context.Context, draftID kernel.UUID) (*order.Order, error)
}

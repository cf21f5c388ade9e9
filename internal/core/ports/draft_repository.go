package ports

import (
	"context"
	"time"

	"intake/internal/core/domain/model/draft"
	"intake/internal/core/domain/model/kernel"
)

// DraftRepository defines the persistence contract for draft aggregates.
type DraftRepository interface {
	// Add persists a new draft aggregate.
	Add(ctx context.Context, aggregate *draft.Draft) error

	// Update overwrites the stored draft in place. The whole row is replaced
	// so that concurrent saves resolve as last write wins.
	Update(ctx context.Context, aggregate *draft.Draft) error

	// Get retrieves a draft by its unique identifier.
	// Returns ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error)

	// DeleteAbandonedBefore removes Active drafts whose last update is older
	// than the cutoff. Superseded drafts are kept for traceability.
	// Returns the number of removed drafts.
	DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

package commands

import (
	"context"
	"time"
)

// PurgeAbandonedDraftsCommandHandler removes Active drafts whose last update
// lies beyond the retention window. Superseded drafts are never purged; they
// carry the traceability reference of their final order.
type PurgeAbandonedDraftsCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewPurgeAbandonedDraftsCommandHandler creates a handler for the draft purge.
func NewPurgeAbandonedDraftsCommandHandler(uowFactory DraftUoWFactory) PurgeAbandonedDraftsCommandHandler {
	return PurgeAbandonedDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes abandoned drafts and returns how many were removed.
func (h *PurgeAbandonedDraftsCommandHandler) Handle(ctx context.Context, cmd PurgeAbandonedDraftsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	removed, err := uow.DraftRepository().DeleteAbandonedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

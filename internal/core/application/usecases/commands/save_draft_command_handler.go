package commands

import (
	"context"
	"time"

	"intake/internal/core/domain/model/draft"
	"intake/internal/core/domain/model/kernel"
)

// SaveDraftCommandHandler handles the draft lifecycle: create on the first
// save, full snapshot replace on every later one.
//
// The operation is idempotent by latest write: saving an unchanged form twice
// with the same draft id leaves the same stored snapshot, and racing saves for
// one session resolve as last write wins against the single draft row the
// session's id points to.
//
// Example:
//
//	handler := NewSaveDraftCommandHandler(uowFactory)
//	cmd, _ := NewSaveDraftCommand(form, nil)
//
//	draftID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("draft save failed: %w", err)
//	}
//	// The wizard may now advance its step pointer.
type SaveDraftCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewSaveDraftCommandHandler creates a handler for draft save operations.
// Requires a DraftUoWFactory for transactional persistence.
func NewSaveDraftCommandHandler(uowFactory DraftUoWFactory) SaveDraftCommandHandler {
	return SaveDraftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft save and returns the draft's server-assigned id.
// The caller must not advance the wizard step unless Handle returned nil;
// a failed save means no progress was acknowledged.
func (h *SaveDraftCommandHandler) Handle(ctx context.Context, cmd SaveDraftCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draftRepo := uow.DraftRepository()
	now := time.Now().UTC()

	if cmd.DraftID() == nil {
		id := kernel.NewUUID()
		d, err := draft.NewDraft(id, cmd.Form(), now)
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = draftRepo.Add(ctx, d); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return id, nil
	}

	id := *cmd.DraftID()
	d, err := draftRepo.Get(ctx, id)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = d.ReplaceSnapshot(cmd.Form(), now); err != nil {
		return kernel.UUID{}, err
	}

	if err = draftRepo.Update(ctx, d); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}

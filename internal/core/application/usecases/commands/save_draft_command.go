package commands

import (
	"errors"

	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var (
	ErrSaveDraftCommandIsNotConstructed = errors.New(
		"SaveDraftCommand must be created via NewSaveDraftCommand constructor",
	)
)

// SaveDraftCommand represents a request to preserve the wizard's current form
// as a recoverable draft. Without a draft id it creates a new draft; with one
// it fully replaces that draft's stored snapshot.
//
// Example:
//
//	cmd, err := NewSaveDraftCommand(form, form.DraftID)
//	if err != nil {
//	    return fmt.Errorf("invalid draft data: %w", err)
//	}
//
//	handler := NewSaveDraftCommandHandler(uowFactory)
//	draftID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to save draft: %w", err)
//	}
//	// Hold on to draftID and reuse it for every later save of this session.
type SaveDraftCommand struct { //nolint:recvcheck //using for validation
	form    intake.FormState
	draftID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveDraftCommand creates a command to save the given form snapshot.
// draftID is nil on the first save of a session and must be the server
// assigned id on every subsequent save; the server never deduplicates.
func NewSaveDraftCommand(form intake.FormState, draftID *kernel.UUID) (SaveDraftCommand, error) {
	cmd := SaveDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setForm(form),
		cmd.setDraftID(draftID),
	); err != nil {
		return SaveDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveDraftCommand) Validate() error {
	return c.guard.Validate(ErrSaveDraftCommandIsNotConstructed)
}

// Form returns the complete form snapshot to store.
func (c SaveDraftCommand) Form() intake.FormState {
	return c.form
}

// DraftID returns the draft to overwrite, or nil for a first save.
func (c SaveDraftCommand) DraftID() *kernel.UUID {
	return c.draftID
}

func (c *SaveDraftCommand) setForm(form intake.FormState) error {
	if err := form.CurrentStep.Validate(); err != nil {
		return err
	}
	c.form = form
	return nil
}

func (c *SaveDraftCommand) setDraftID(draftID *kernel.UUID) error {
	if draftID == nil {
		return nil
	}
	if err := draftID.Validate(); err != nil {
		return err
	}
	id := *draftID
	c.draftID = &id
	return nil
}

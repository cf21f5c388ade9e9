package commands

import (
	"errors"

	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var (
	ErrFinalizeIntakeCommandIsNotConstructed = errors.New(
		"FinalizeIntakeCommand must be created via NewFinalizeIntakeCommand constructor",
	)
)

// FinalizeIntakeCommand represents the submission of a completed intake form:
// create or update the customer record and turn the draft into a final order,
// atomically.
//
// Example:
//
//	cmd, err := NewFinalizeIntakeCommand(form, *form.DraftID)
//	if err != nil {
//	    return fmt.Errorf("form is not submittable: %w", err)
//	}
//
//	handler := NewFinalizeIntakeCommandHandler(uowFactory, notifier)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // Draft is intact; surface a retryable error.
//	}
type FinalizeIntakeCommand struct { //nolint:recvcheck //using for validation
	form    intake.FormState
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeIntakeCommand creates a finalization command. The form must
// carry complete identity and contact data and a chosen customer mode, and
// the draft id must be the one assigned to this session.
func NewFinalizeIntakeCommand(form intake.FormState, draftID kernel.UUID) (FinalizeIntakeCommand, error) {
	cmd := FinalizeIntakeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setForm(form),
		cmd.setDraftID(draftID),
	); err != nil {
		return FinalizeIntakeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeIntakeCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeIntakeCommandIsNotConstructed)
}

// Form returns the completed form snapshot.
func (c FinalizeIntakeCommand) Form() intake.FormState {
	return c.form
}

// DraftID returns the draft the final order will supersede.
func (c FinalizeIntakeCommand) DraftID() kernel.UUID {
	return c.draftID
}

func (c *FinalizeIntakeCommand) setForm(form intake.FormState) error {
	if err := form.Mode.Validate(); err != nil {
		return err
	}
	if !form.IdentityComplete() {
		return errs.NewValueIsRequiredError("identity and contact fields")
	}
	c.form = form
	return nil
}

func (c *FinalizeIntakeCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}
	c.draftID = draftID
	return nil
}

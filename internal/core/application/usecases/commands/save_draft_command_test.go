package commands_test

import (
	"testing"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftForm() intake.FormState {
	form := intake.NewFormState()
	form.Mode = intake.ModeNew
	form.FirstName = "Jane"
	form.LastName = "Doe"
	form.Identification = "9999999999"
	form.Phone = "0991234567"
	form.Email = "jane@example.com"
	form.CurrentStep = intake.StepIdentity
	return form
}

func TestNewSaveDraftCommand(t *testing.T) {
	t.Run("should create command for a first save without draft id", func(t *testing.T) {
		form := draftForm()

		cmd, err := commands.NewSaveDraftCommand(form, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, form, cmd.Form())
		assert.Nil(t, cmd.DraftID())
	})

	t.Run("should create command for a subsequent save with draft id", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewSaveDraftCommand(draftForm(), &id)

		require.NoError(t, err)
		require.NotNil(t, cmd.DraftID())
		assert.True(t, cmd.DraftID().IsEqual(id))
	})

	t.Run("should copy the draft id instead of aliasing it", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewSaveDraftCommand(draftForm(), &id)

		require.NoError(t, err)
		assert.NotSame(t, &id, cmd.DraftID())
	})

	t.Run("should fail with an invalid form step", func(t *testing.T) {
		form := draftForm()
		form.CurrentStep = intake.UnknownStep

		_, err := commands.NewSaveDraftCommand(form, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "step is invalid")
	})

	t.Run("should fail with an unconstructed draft id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewSaveDraftCommand(draftForm(), &zeroID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestSaveDraftCommand_Validate(t *testing.T) {
	t.Run("should reject a command not created via constructor", func(t *testing.T) {
		var cmd commands.SaveDraftCommand

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrSaveDraftCommandIsNotConstructed)
	})
}

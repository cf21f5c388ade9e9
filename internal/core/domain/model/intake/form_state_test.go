package intake_test

import (
	"testing"

	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormState(t *testing.T) {
	t.Run("should start on the first page with nothing chosen", func(t *testing.T) {
		form := intake.NewFormState()

		assert.Equal(t, intake.StepClientType, form.CurrentStep)
		assert.Equal(t, intake.ModeUnknown, form.Mode)
		assert.Nil(t, form.DraftID)
		assert.Nil(t, form.BoundCustomerID)
		assert.Empty(t, form.FirstName)
		assert.Empty(t, form.Street)
	})
}

func TestFormState_Set(t *testing.T) {
	t.Run("should assign every input field by name", func(t *testing.T) {
		testCases := []struct {
			field string
			get   func(f intake.FormState) string
		}{
			{intake.FieldFirstName, func(f intake.FormState) string { return f.FirstName }},
			{intake.FieldLastName, func(f intake.FormState) string { return f.LastName }},
			{intake.FieldIdentification, func(f intake.FormState) string { return f.Identification }},
			{intake.FieldPhone, func(f intake.FormState) string { return f.Phone }},
			{intake.FieldEmail, func(f intake.FormState) string { return f.Email }},
			{intake.FieldStreet, func(f intake.FormState) string { return f.Street }},
			{intake.FieldCity, func(f intake.FormState) string { return f.City }},
			{intake.FieldProvince, func(f intake.FormState) string { return f.Province }},
			{intake.FieldInstructions, func(f intake.FormState) string { return f.Instructions }},
		}

		for _, tc := range testCases {
			form := intake.NewFormState()

			err := form.Set(tc.field, "some value")

			require.NoError(t, err)
			assert.Equal(t, "some value", tc.get(form))
		}
	})

	t.Run("should reject unknown field names", func(t *testing.T) {
		form := intake.NewFormState()

		err := form.Set("currentStep", "2")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not an input field")
	})

	t.Run("should overwrite a previous value", func(t *testing.T) {
		form := intake.NewFormState()

		require.NoError(t, form.Set(intake.FieldCity, "Quito"))
		require.NoError(t, form.Set(intake.FieldCity, "Cuenca"))

		assert.Equal(t, "Cuenca", form.City)
	})
}

func TestFormState_IdentityComplete(t *testing.T) {
	complete := func() intake.FormState {
		form := intake.NewFormState()
		form.FirstName = "Jane"
		form.LastName = "Doe"
		form.Identification = "9999999999"
		form.Phone = "0991234567"
		form.Email = "jane@example.com"
		return form
	}

	t.Run("should report true when all identity and contact fields are set", func(t *testing.T) {
		assert.True(t, complete().IdentityComplete())
	})

	t.Run("should report false when any required field is blank", func(t *testing.T) {
		blankers := []func(f *intake.FormState){
			func(f *intake.FormState) { f.FirstName = "" },
			func(f *intake.FormState) { f.LastName = "   " },
			func(f *intake.FormState) { f.Identification = "" },
			func(f *intake.FormState) { f.Phone = "" },
			func(f *intake.FormState) { f.Email = " " },
		}

		for _, blank := range blankers {
			form := complete()
			blank(&form)
			assert.False(t, form.IdentityComplete())
		}
	})
}

func TestFormState_Bound(t *testing.T) {
	t.Run("should report bound only when a customer id is attached", func(t *testing.T) {
		form := intake.NewFormState()
		assert.False(t, form.Bound())

		id := kernel.NewUUID()
		form.BoundCustomerID = &id
		assert.True(t, form.Bound())
	})
}

package services_test

import (
	"testing"

	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeForm() intake.FormState {
	form := intake.NewFormState()
	form.Mode = intake.ModeNew
	form.FirstName = "Jane"
	form.LastName = "Doe"
	form.Identification = "9999999999"
	form.Phone = "0991234567"
	form.Email = "jane@example.com"
	form.Street = "Av. Amazonas N36-152"
	form.City = "Quito"
	form.Province = "Pichincha"
	return form
}

func TestStepValidator_ValidateStep(t *testing.T) {
	validator := services.NewStepValidator()

	t.Run("should check only the fields of the target step", func(t *testing.T) {
		form := intake.NewFormState()
		form.Mode = intake.ModeNew

		// Identity is empty, but the first page only cares about the mode.
		result := validator.ValidateStep(form, intake.StepClientType)
		assert.True(t, result.IsEmpty())

		result = validator.ValidateStep(form, intake.StepIdentity)
		assert.False(t, result.IsEmpty())
		assert.NotContains(t, result.Fields(), intake.FieldClientType)
		assert.NotContains(t, result.Fields(), intake.FieldStreet)
	})

	t.Run("should pass every step of a complete form", func(t *testing.T) {
		form := completeForm()

		for _, step := range []intake.Step{intake.StepClientType, intake.StepIdentity, intake.StepAddress} {
			result := validator.ValidateStep(form, step)
			assert.True(t, result.IsEmpty(), "step %s should be valid", step.String())
		}
	})

	t.Run("should return an empty set for Review", func(t *testing.T) {
		result := validator.ValidateStep(intake.NewFormState(), intake.StepReview)
		assert.True(t, result.IsEmpty())
	})

	t.Run("should return an empty set for invalid steps", func(t *testing.T) {
		result := validator.ValidateStep(intake.NewFormState(), intake.UnknownStep)
		assert.True(t, result.IsEmpty())
	})

	t.Run("should be deterministic for identical input", func(t *testing.T) {
		form := intake.NewFormState()
		form.FirstName = "J"

		first := validator.ValidateStep(form, intake.StepIdentity)
		second := validator.ValidateStep(form, intake.StepIdentity)

		assert.Equal(t, first, second)
	})
}

func TestStepValidator_ValidateForm(t *testing.T) {
	validator := services.NewStepValidator()

	t.Run("should pass a complete form", func(t *testing.T) {
		result := validator.ValidateForm(completeForm())
		assert.True(t, result.IsEmpty())
	})

	t.Run("should merge errors from every step", func(t *testing.T) {
		form := intake.NewFormState()

		result := validator.ValidateForm(form)

		fields := result.Fields()
		assert.Contains(t, fields, intake.FieldClientType)
		assert.Contains(t, fields, intake.FieldFirstName)
		assert.Contains(t, fields, intake.FieldStreet)
	})

	t.Run("should report a single failing field among valid ones", func(t *testing.T) {
		form := completeForm()
		form.City = "Q"

		result := validator.ValidateForm(form)

		require.Equal(t, []string{intake.FieldCity}, result.Fields())
	})
}

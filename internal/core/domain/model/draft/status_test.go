package draft_test

import (
	"fmt"
	"testing"

	"intake/internal/core/domain/model/draft"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(draft.Unknown))
		assert.Equal(t, 1, int(draft.Active))
		assert.Equal(t, 2, int(draft.Superseded))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		require.NoError(t, draft.Active.Validate())
		require.NoError(t, draft.Superseded.Validate())
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := draft.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []draft.Status{draft.Status(-1), draft.Status(3), draft.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for each status", func(t *testing.T) {
		assert.Equal(t, "Unknown", draft.Unknown.String())
		assert.Equal(t, "Active", draft.Active.String())
		assert.Equal(t, "Superseded", draft.Superseded.String())
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", draft.Status(42).String())
	})
}

func TestStatus_Supersede(t *testing.T) {
	t.Run("should allow transition from Active to Superseded", func(t *testing.T) {
		newStatus, err := draft.Active.Supersede()

		require.NoError(t, err)
		assert.Equal(t, draft.Superseded, newStatus)
	})

	t.Run("should reject superseding twice", func(t *testing.T) {
		newStatus, err := draft.Superseded.Supersede()

		require.Error(t, err)
		assert.Equal(t, draft.Status(0), newStatus)
		assert.Contains(t, err.Error(), "Superseded is not a valid status to supersede")
	})

	t.Run("should reject transition from Unknown", func(t *testing.T) {
		_, err := draft.Unknown.Supersede()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown is not a valid status to supersede")
	})

	t.Run("should not modify the original status", func(t *testing.T) {
		status := draft.Active

		_, err := status.Supersede()

		require.NoError(t, err)
		assert.Equal(t, draft.Active, status)
	})
}

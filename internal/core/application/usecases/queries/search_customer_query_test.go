package queries_test

import (
	"testing"

	"intake/internal/core/application/usecases/queries"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchType_Validate(t *testing.T) {
	t.Run("should accept searchable fields", func(t *testing.T) {
		require.NoError(t, queries.SearchByIdentification.Validate())
		require.NoError(t, queries.SearchByEmail.Validate())
		require.NoError(t, queries.SearchByPhone.Validate())
	})

	t.Run("should reject an unknown field", func(t *testing.T) {
		err := queries.SearchType("lastName").Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "search type is invalid")
		assert.Contains(t, err.Error(), `"lastName" is not a searchable field`)
	})

	t.Run("should reject the empty type", func(t *testing.T) {
		err := queries.SearchType("").Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewSearchCustomerQuery(t *testing.T) {
	t.Run("should create query with valid type and identifier", func(t *testing.T) {
		query, err := queries.NewSearchCustomerQuery(queries.SearchByIdentification, "1712345678")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, queries.SearchByIdentification, query.SearchType())
		assert.Equal(t, "1712345678", query.Identifier())
	})

	t.Run("should trim the identifier", func(t *testing.T) {
		query, err := queries.NewSearchCustomerQuery(queries.SearchByEmail, "  jane@example.com  ")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", query.Identifier())
	})

	t.Run("should return error for invalid search type", func(t *testing.T) {
		_, err := queries.NewSearchCustomerQuery(queries.SearchType("address"), "1712345678")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for empty identifier", func(t *testing.T) {
		_, err := queries.NewSearchCustomerQuery(queries.SearchByPhone, "   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "identifier")
	})
}

func TestSearchCustomerQuery_Validate(t *testing.T) {
	t.Run("should return error for zero value query", func(t *testing.T) {
		var query queries.SearchCustomerQuery

		err := query.Validate()

		require.ErrorIs(t, err, queries.ErrSearchCustomerQueryIsNotConstructed)
	})
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"intake/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchCustomerQueryHandler resolves the single-field identity search.
// Read-only: customer records are looked up, never mutated.
type SearchCustomerQueryHandler struct {
	db *gorm.DB
}

// NewSearchCustomerQueryHandler creates a handler for identity searches.
// Requires a GORM database connection for query execution.
func NewSearchCustomerQueryHandler(db *gorm.DB) SearchCustomerQueryHandler {
	return SearchCustomerQueryHandler{db: db}
}

// Handle runs the exact-match lookup on the selected field. The first match
// wins; no match yields Found false with a nil error, while a store failure
// yields an error so callers never mistake an outage for "no such customer".
func (h SearchCustomerQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomerQuery,
) (SearchCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchCustomerQueryResponse{}, err
	}

	var column string
	switch query.SearchType() {
	case SearchByIdentification:
		column = "identification"
	case SearchByEmail:
		column = "email"
	case SearchByPhone:
		column = "phone"
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			identification,
			first_name,
			last_name,
			email,
			phone,
			address_street,
			address_city,
			address_province,
			address_instructions
		FROM customers
		WHERE `+column+` = ?
		LIMIT 1
	`, query.Identifier()).Row()

	var id uuid.UUID
	var result CustomerResult
	var street, city, province, instructions sql.NullString

	err := row.Scan(
		&id,
		&result.Identification,
		&result.FirstName,
		&result.LastName,
		&result.Email,
		&result.Phone,
		&street,
		&city,
		&province,
		&instructions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SearchCustomerQueryResponse{Found: false}, nil
		}
		return SearchCustomerQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return SearchCustomerQueryResponse{}, err
	}
	result.ID = customerID

	if street.Valid && city.Valid && province.Valid {
		result.Address = &CustomerAddressResult{
			Street:       street.String,
			City:         city.String,
			Province:     province.String,
			Instructions: instructions.String,
		}
	}

	return SearchCustomerQueryResponse{Found: true, Customer: &result}, nil
}

package queries

import (
	"errors"
	"fmt"
	"strings"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var (
	ErrSearchCustomerQueryIsNotConstructed = errors.New(
		"SearchCustomerQuery must be created via NewSearchCustomerQuery constructor",
	)
)

// SearchType selects which single field the identity search matches against.
// The user picks it with the search toggle on the wizard's first page.
type SearchType string

const (
	SearchByIdentification SearchType = "identification"
	SearchByEmail          SearchType = "email"
	SearchByPhone          SearchType = "phone"
)

// Validate checks that the search type names a searchable field.
func (t SearchType) Validate() error {
	switch t {
	case SearchByIdentification, SearchByEmail, SearchByPhone:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("search type is invalid",
			fmt.Errorf("%q is not a searchable field", string(t)))
	}
}

// SearchCustomerQuery is the single-field identity search of the existing
// customer path. It matches exactly one field, chosen by the user, and the
// first exact match wins, unlike the duplicate guard, which is exhaustive.
//
// Example:
//
//	query, _ := NewSearchCustomerQuery(SearchByIdentification, "1712345678")
//	handler := NewSearchCustomerQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // store unavailable
//	}
//	if response.Found {
//	    // Pre-fill the form from response.Customer and bind the session.
//	}
type SearchCustomerQuery struct { //nolint:recvcheck //using for validation
	searchType SearchType
	identifier string

	guard guard.ConstructorGuard
}

// NewSearchCustomerQuery creates an identity search for the given field and value.
func NewSearchCustomerQuery(searchType SearchType, identifier string) (SearchCustomerQuery, error) {
	identifier = strings.TrimSpace(identifier)

	if err := searchType.Validate(); err != nil {
		return SearchCustomerQuery{}, err
	}
	if identifier == "" {
		return SearchCustomerQuery{}, errs.NewValueIsRequiredError("identifier")
	}

	return SearchCustomerQuery{
		searchType: searchType,
		identifier: identifier,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchCustomerQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomerQueryIsNotConstructed)
}

// SearchType returns the field the search matches against.
func (q SearchCustomerQuery) SearchType() SearchType {
	return q.searchType
}

// Identifier returns the value to match.
func (q SearchCustomerQuery) Identifier() string {
	return q.identifier
}

// CustomerAddressResult is the saved address of a found customer in the read
// model. Present only when the record carries one.
type CustomerAddressResult struct {
	Street       string
	City         string
	Province     string
	Instructions string
}

// CustomerResult represents a matched customer in the read model.
type CustomerResult struct {
	ID             kernel.UUID
	Identification string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        *CustomerAddressResult
}

// SearchCustomerQueryResponse carries the search outcome. Found false with a
// nil error means the identifier genuinely matched nobody.
type SearchCustomerQueryResponse struct {
	Found    bool
	Customer *CustomerResult
}

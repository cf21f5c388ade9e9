// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"

	"intake/internal/core/domain/model/intake"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var (
	ErrCheckDuplicatesQueryIsNotConstructed = errors.New(
		"CheckDuplicatesQuery must be created via NewCheckDuplicatesQuery constructor",
	)
)

// CheckDuplicatesQuery is the exhaustive duplicate guard for new customers.
// Unlike the identity search it never short-circuits: identification, email
// and phone are checked independently and every collision is reported at
// once, so a new customer can be rejected on all three fields simultaneously.
//
// Empty fields are skipped; at least one field must be non-empty.
//
// Example:
//
//	query, _ := NewCheckDuplicatesQuery("9999999999", "a@b.com", "0991234567")
//	handler := NewCheckDuplicatesQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    // Store unavailable. This is NOT "no duplicate found".
//	    return err
//	}
//	if response.AnyCollision() {
//	    // Block the transition, surface response.ErrorSet() per field.
//	}
type CheckDuplicatesQuery struct { //nolint:recvcheck //using for validation
	identification string
	email          string
	phone          string

	guard guard.ConstructorGuard
}

// NewCheckDuplicatesQuery creates a duplicate-guard query. Fields may be
// empty individually but not all at once.
func NewCheckDuplicatesQuery(identification, email, phone string) (CheckDuplicatesQuery, error) {
	if strings.TrimSpace(identification) == "" &&
		strings.TrimSpace(email) == "" &&
		strings.TrimSpace(phone) == "" {
		return CheckDuplicatesQuery{}, errs.NewValueIsRequiredError("at least one of identification, email, phone")
	}

	return CheckDuplicatesQuery{
		identification: strings.TrimSpace(identification),
		email:          strings.TrimSpace(email),
		phone:          strings.TrimSpace(phone),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckDuplicatesQuery) Validate() error {
	return q.guard.Validate(ErrCheckDuplicatesQueryIsNotConstructed)
}

// Identification returns the national id / passport to check, possibly empty.
func (q CheckDuplicatesQuery) Identification() string {
	return q.identification
}

// Email returns the email to check, possibly empty.
func (q CheckDuplicatesQuery) Email() string {
	return q.email
}

// Phone returns the phone to check, possibly empty.
func (q CheckDuplicatesQuery) Phone() string {
	return q.phone
}

// CheckDuplicatesQueryResponse carries the per-field collision flags.
type CheckDuplicatesQueryResponse struct {
	Identification bool
	Email          bool
	Phone          bool
}

// AnyCollision reports whether at least one field collides.
func (r CheckDuplicatesQueryResponse) AnyCollision() bool {
	return r.Identification || r.Email || r.Phone
}

// ErrorSet converts the collision flags into the field-keyed error map the
// wizard surfaces to the user.
func (r CheckDuplicatesQueryResponse) ErrorSet() intake.DuplicateErrorSet {
	result := intake.DuplicateErrorSet{}
	if r.Identification {
		result[intake.FieldIdentification] = "a customer with this identification already exists"
	}
	if r.Email {
		result[intake.FieldEmail] = "a customer with this email already exists"
	}
	if r.Phone {
		result[intake.FieldPhone] = "a customer with this phone already exists"
	}
	return result
}

package intake

import (
	"strings"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
)

// Form field names. These are the keys used in ValidationErrorSet and
// DuplicateErrorSet and the field identifiers accepted by FormState.Set.
const (
	FieldClientType     = "clientType"
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldIdentification = "identification"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldStreet         = "street"
	FieldCity           = "city"
	FieldProvince       = "province"
	FieldInstructions   = "instructions"
)

// FormState is the single mutable record a wizard session edits. It holds the
// identity, contact and address fields entered so far plus the workflow
// metadata: the current step, the chosen customer mode, the draft identifier
// once the lifecycle manager assigned one, and the customer the session got
// bound to by a successful identity search.
//
// FormState is owned exclusively by one wizard session and is never shared
// across sessions. It is a plain record by design: validation lives in the
// step schemas, not in the record itself, because the wizard must be able to
// hold arbitrarily incomplete input between transitions.
type FormState struct {
	// Identity fields (step 2)
	FirstName      string
	LastName       string
	Identification string

	// Contact fields (step 2)
	Phone string
	Email string

	// Address fields (step 3)
	Street       string
	City         string
	Province     string
	Instructions string

	// Workflow metadata
	CurrentStep Step
	Mode        CustomerMode

	// DraftID is set once the first draft save assigned an identifier and is
	// reused for every subsequent save of this session.
	DraftID *kernel.UUID

	// BoundCustomerID references the existing customer this session was bound
	// to by identity search. Nil for new customers.
	BoundCustomerID *kernel.UUID
}

// NewFormState returns the initial empty form: first page, no mode chosen,
// no draft and no customer binding.
func NewFormState() FormState {
	return FormState{
		CurrentStep: StepClientType,
		Mode:        ModeUnknown,
	}
}

// Set assigns value to the named input field. Unknown field names yield an
// error; workflow metadata cannot be changed through Set.
func (f *FormState) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldIdentification:
		f.Identification = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldStreet:
		f.Street = value
	case FieldCity:
		f.City = value
	case FieldProvince:
		f.Province = value
	case FieldInstructions:
		f.Instructions = value
	default:
		return errs.NewValueIsInvalidError("field " + field + " is not an input field")
	}
	return nil
}

// IdentityComplete reports whether all required identity and contact fields
// carry a non-blank value. Part of the finalize invariant for new customers.
func (f FormState) IdentityComplete() bool {
	for _, v := range []string{f.FirstName, f.LastName, f.Identification, f.Phone, f.Email} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Bound reports whether the session is bound to an existing customer record.
func (f FormState) Bound() bool {
	return f.BoundCustomerID != nil
}

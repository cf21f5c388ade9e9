package intake

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern is the address grammar the form accepts: one non-blank local
// part, an @, and a domain containing at least one dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Minimum lengths for step fields.
const (
	minNameLen           = 2
	minPhoneLen          = 8
	minIdentificationLen = 5
	minStreetLen         = 5
	minCityLen           = 2
	minProvinceLen       = 2
)

// StepSchema is the validation schema of exactly one wizard step. The
// interface is sealed: the only implementations are ClientTypeSchema,
// IdentitySchema and AddressSchema, so every step has exactly the validation
// it needs and nothing else.
//
// Check is pure and deterministic: identical FormState input always yields an
// identical ValidationErrorSet, it performs no I/O and it never panics on
// incomplete input. An empty result means the step is valid.
type StepSchema interface {
	// TargetStep names the step this schema validates.
	TargetStep() Step

	// Check returns the errors for exactly the fields relevant to the step.
	Check(form FormState) ValidationErrorSet

	isStepSchema()
}

// SchemaForStep returns the schema validating the given step. The Review step
// has no schema of its own (it re-checks the ones before it), so ok is false
// for it and for invalid steps.
func SchemaForStep(step Step) (StepSchema, bool) {
	switch step {
	case StepClientType:
		return ClientTypeSchema{}, true
	case StepIdentity:
		return IdentitySchema{}, true
	case StepAddress:
		return AddressSchema{}, true
	default:
		return nil, false
	}
}

// ClientTypeSchema validates the first page: a customer mode must be chosen.
type ClientTypeSchema struct{}

// TargetStep returns StepClientType.
func (ClientTypeSchema) TargetStep() Step { return StepClientType }

// Check reports a clientType error while no mode has been chosen.
func (ClientTypeSchema) Check(form FormState) ValidationErrorSet {
	result := ValidationErrorSet{}
	if form.Mode.Validate() != nil {
		result[FieldClientType] = "choose an existing or a new customer"
	}
	return result
}

func (ClientTypeSchema) isStepSchema() {}

// IdentitySchema validates the identity and contact page: name lengths, phone
// length, email grammar and identification length.
type IdentitySchema struct{}

// TargetStep returns StepIdentity.
func (IdentitySchema) TargetStep() Step { return StepIdentity }

// Check returns an entry per failing identity or contact field.
func (IdentitySchema) Check(form FormState) ValidationErrorSet {
	result := ValidationErrorSet{}

	if fieldLen(form.FirstName) < minNameLen {
		result[FieldFirstName] = fmt.Sprintf("first name must be at least %d characters", minNameLen)
	}
	if fieldLen(form.LastName) < minNameLen {
		result[FieldLastName] = fmt.Sprintf("last name must be at least %d characters", minNameLen)
	}
	if fieldLen(form.Identification) < minIdentificationLen {
		result[FieldIdentification] = fmt.Sprintf("identification must be at least %d characters", minIdentificationLen)
	}
	if fieldLen(form.Phone) < minPhoneLen {
		result[FieldPhone] = fmt.Sprintf("phone must be at least %d characters", minPhoneLen)
	}
	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		result[FieldEmail] = "email address is not valid"
	}

	return result
}

func (IdentitySchema) isStepSchema() {}

// AddressSchema validates the destination page: street, city and province
// must carry a non-trivial value. Delivery instructions are free-form.
type AddressSchema struct{}

// TargetStep returns StepAddress.
func (AddressSchema) TargetStep() Step { return StepAddress }

// Check returns an entry per failing address field.
func (AddressSchema) Check(form FormState) ValidationErrorSet {
	result := ValidationErrorSet{}

	if fieldLen(form.Street) < minStreetLen {
		result[FieldStreet] = fmt.Sprintf("street must be at least %d characters", minStreetLen)
	}
	if fieldLen(form.City) < minCityLen {
		result[FieldCity] = fmt.Sprintf("city must be at least %d characters", minCityLen)
	}
	if fieldLen(form.Province) < minProvinceLen {
		result[FieldProvince] = fmt.Sprintf("province must be at least %d characters", minProvinceLen)
	}

	return result
}

func (AddressSchema) isStepSchema() {}

// fieldLen counts the runes of the trimmed value, so padding spaces never
// satisfy a length rule.
func fieldLen(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}

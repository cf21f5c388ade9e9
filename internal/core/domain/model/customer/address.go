package customer

import (
	"errors"

	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the saved delivery destination of a customer. It is a value
// object: immutable after construction and compared by value.
//
// Street, city and province are required; delivery instructions are optional
// free-form text.
type Address struct {
	street       string
	city         string
	province     string
	instructions string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street, city and province must be
// non-empty.
func NewAddress(street, city, province, instructions string) (Address, error) {
	address := Address{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setProvince(province),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the destination city.
func (a Address) City() string {
	return a.city
}

// Province returns the destination province.
func (a Address) Province() string {
	return a.province
}

// Instructions returns the optional delivery instructions.
func (a Address) Instructions() string {
	return a.instructions
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setProvince(province string) error {
	if province == "" {
		return errs.NewValueIsRequiredError("province")
	}
	a.province = province
	return nil
}

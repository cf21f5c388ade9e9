package customer

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory functions.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a canonical customer record.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty identification (national id / passport), the
//     primary deduplication key
//   - Must have non-empty names, email and phone
//   - May carry one saved delivery address
//
// The struct uses private fields to ensure encapsulation; state changes go
// through validated methods. During duplicate checking customers are read
// only; UpdateContact and SetAddress are used exclusively at finalization.
type Customer struct {
	id             kernel.UUID
	identification string
	firstName      string
	lastName       string
	email          string
	phone          string
	address        *Address

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with validation. This is the only way,
// besides RestoreCustomer, to obtain a valid instance.
func NewCustomer(id kernel.UUID, identification, firstName, lastName, email, phone string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setIdentification(identification),
		c.setNames(firstName, lastName),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage, including
// the optional saved address. The restored customer behaves identically to
// one created through NewCustomer.
func RestoreCustomer(
	id kernel.UUID,
	identification, firstName, lastName, email, phone string,
	address *Address,
) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setIdentification(identification),
		c.setNames(firstName, lastName),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Identification returns the national id / passport number.
func (c *Customer) Identification() string {
	return c.identification
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the saved delivery address, or nil when the record carries none.
func (c *Customer) Address() *Address {
	return c.address
}

// UpdateContact replaces the customer's names, email and phone. Used at
// finalization when an intake bound to an existing customer carries fresher
// contact data. The identification never changes.
func (c *Customer) UpdateContact(firstName, lastName, email, phone string) error {
	return errors.Join(
		c.setNames(firstName, lastName),
		c.setEmail(email),
		c.setPhone(phone),
	)
}

// SetAddress stores address as the customer's saved delivery address,
// replacing any previous one.
func (c *Customer) SetAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = &address
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setIdentification(identification string) error {
	if identification == "" {
		return errs.NewValueIsRequiredError("identification")
	}
	c.identification = identification
	return nil
}

func (c *Customer) setNames(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address *Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

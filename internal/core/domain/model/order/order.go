package order

import (
	"errors"
	"time"

	"intake/internal/core/domain/model/customer"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the final order created at successful wizard completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a valid customer and the draft it superseded
//   - Must carry a complete delivery address snapshot
//   - Is immutable after construction
type Order struct {
	id        kernel.UUID
	custID    kernel.UUID
	draftID   kernel.UUID
	address   customer.Address
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a final order for the given customer, referencing the
// draft it supersedes and snapshotting the delivery address entered in the
// wizard.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	draftID kernel.UUID,
	address customer.Address,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDraftID(draftID),
		o.setAddress(address),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	draftID kernel.UUID,
	address customer.Address,
	createdAt time.Time,
) (*Order, error) {
	return NewOrder(id, customerID, draftID, address, createdAt)
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer the order belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.custID
}

// DraftID returns the identifier of the draft this order superseded.
func (o *Order) DraftID() kernel.UUID {
	return o.draftID
}

// Address returns the delivery address snapshot taken at submission.
func (o *Order) Address() customer.Address {
	return o.address
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.custID = id
	return nil
}

func (o *Order) setDraftID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.draftID = id
	return nil
}

func (o *Order) setAddress(address customer.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = at
	return nil
}

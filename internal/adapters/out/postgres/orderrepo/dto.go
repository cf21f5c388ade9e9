// Package orderrepo provides data transfer objects and mapping functions for
// final order persistence. Final orders are append-only records created at
// intake finalization and hold a snapshot of the delivery address.
package orderrepo

import (
	"time"

	"intake/internal/core/domain/model/customer"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting final orders.
// DraftID carries a unique index: a draft is superseded by at most one order,
// which is what keeps finalization retries idempotent.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	DraftID    uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Address    AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for final order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
// Unlike the customer's saved address it is always present.
type AddressDTO struct {
	Street       string
	City         string
	Province     string
	Instructions string
}

// fromDomain converts a final order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	address := order.Address()

	return OrderDTO{
		ID:         order.ID().Bytes(),
		CustomerID: order.CustomerID().Bytes(),
		DraftID:    order.DraftID().Bytes(),
		Address: AddressDTO{
			Street:       address.Street(),
			City:         address.City(),
			Province:     address.Province(),
			Instructions: address.Instructions(),
		},
		CreatedAt: order.CreatedAt(),
	}
}

// toDomain converts a database DTO to a final order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	draftID, err := kernel.UUIDFromBytes(dto.DraftID[:])
	if err != nil {
		return nil, err
	}

	address, err := customer.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.Province,
		dto.Address.Instructions,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, draftID, address, dto.CreatedAt)
}

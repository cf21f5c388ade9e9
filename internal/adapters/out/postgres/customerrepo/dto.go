// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. This package implements the repository pattern
// for the customer domain aggregate, handling the conversion between domain
// entities and database representations.
package customerrepo

import (
	"intake/internal/core/domain/model/customer"
	"intake/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. Identification, email and phone carry unique indexes so the
// store enforces the deduplication keys even when two finalizations race.
type CustomerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identification string    `gorm:"uniqueIndex"`
	FirstName      string
	LastName       string
	Email          string     `gorm:"uniqueIndex"`
	Phone          string     `gorm:"uniqueIndex"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the embedded, optional saved address within the
// customer table. All columns are NULL while the customer has no address.
type AddressDTO struct {
	Street       *string
	City         *string
	Province     *string
	Instructions *string
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:             customer.ID().Bytes(),
		Identification: customer.Identification(),
		FirstName:      customer.FirstName(),
		LastName:       customer.LastName(),
		Email:          customer.Email(),
		Phone:          customer.Phone(),
	}

	if address := customer.Address(); address != nil {
		street := address.Street()
		city := address.City()
		province := address.Province()
		instructions := address.Instructions()
		dto.Address = AddressDTO{
			Street:       &street,
			City:         &city,
			Province:     &province,
			Instructions: &instructions,
		}
	}

	return dto
}

// toDomain converts a database DTO to a customer domain aggregate.
// Reconstructs the complete aggregate including the saved address using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var address *customer.Address
	if dto.Address.Street != nil && dto.Address.City != nil && dto.Address.Province != nil {
		instructions := ""
		if dto.Address.Instructions != nil {
			instructions = *dto.Address.Instructions
		}

		restored, addressErr := customer.NewAddress(
			*dto.Address.Street,
			*dto.Address.City,
			*dto.Address.Province,
			instructions,
		)
		if addressErr != nil {
			return nil, addressErr
		}

		address = &restored
	}

	return customer.RestoreCustomer(
		id,
		dto.Identification,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		address,
	)
}

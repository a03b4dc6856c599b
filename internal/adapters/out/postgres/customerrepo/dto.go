// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"time"

	"bookstore/internal/core/domain/model/customer"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The (name, shipping_address) pair is the natural key at creation time
// only; the address may change afterwards without affecting identity.
// The key is indexed but not unique, CreatedAt breaks ties with the
// earliest row winning lookups.
type CustomerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"index:idx_customers_natural_key"`
	ShippingAddress string    `gorm:"index:idx_customers_natural_key"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:              customer.ID().Bytes(),
		Name:            customer.Name(),
		ShippingAddress: customer.ShippingAddress(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.ShippingAddress)
}

package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetCustomerAddressQueryIsNotConstructed = errors.New(
		"GetCustomerAddressQuery must be created via NewGetCustomerAddressQuery constructor",
	)
)

// GetCustomerAddressQuery reads a customer's current shipping address.
type GetCustomerAddressQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerAddressQuery creates a query to read a customer's address.
func NewGetCustomerAddressQuery(customerID kernel.UUID) (GetCustomerAddressQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerAddressQuery{}, err
	}

	return GetCustomerAddressQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerAddressQueryIsNotConstructed)
}

// CustomerID returns the customer to read the address of.
func (q GetCustomerAddressQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerAddressQueryResponse carries the current shipping address.
type GetCustomerAddressQueryResponse struct {
	Address string
}

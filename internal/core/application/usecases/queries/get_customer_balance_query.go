package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetCustomerBalanceQueryIsNotConstructed = errors.New(
		"GetCustomerBalanceQuery must be created via NewGetCustomerBalanceQuery constructor",
	)
)

// GetCustomerBalanceQuery reads a customer's balance: the total price of
// all books the customer has ordered. The balance is derived, never
// stored.
type GetCustomerBalanceQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerBalanceQuery creates a query to read a customer's balance.
func NewGetCustomerBalanceQuery(customerID kernel.UUID) (GetCustomerBalanceQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerBalanceQuery{}, err
	}

	return GetCustomerBalanceQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerBalanceQueryIsNotConstructed)
}

// CustomerID returns the customer to compute the balance for.
func (q GetCustomerBalanceQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerBalanceQueryResponse carries the derived balance.
// A customer with no orders has a balance of zero.
type GetCustomerBalanceQueryResponse struct {
	Balance float64
}

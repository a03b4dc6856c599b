package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrFindCustomerQueryIsNotConstructed = errors.New(
		"FindCustomerQuery must be created via NewFindCustomerQuery constructor",
	)
	ErrQueryNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrQueryAddressIsRequired = errs.NewValueIsRequiredError("shippingAddress")
)

// FindCustomerQuery resolves a customer's surrogate id from the natural
// key used at creation time.
type FindCustomerQuery struct {
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewFindCustomerQuery creates a query to resolve a customer by
// (name, address). Both parts of the natural key must be non-empty.
func NewFindCustomerQuery(name string, address string) (FindCustomerQuery, error) {
	if name == "" {
		return FindCustomerQuery{}, ErrQueryNameIsRequired
	}
	if address == "" {
		return FindCustomerQuery{}, ErrQueryAddressIsRequired
	}

	return FindCustomerQuery{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindCustomerQuery) Validate() error {
	return q.guard.Validate(ErrFindCustomerQueryIsNotConstructed)
}

// Name returns the name part of the natural key.
func (q FindCustomerQuery) Name() string {
	return q.name
}

// Address returns the address part of the natural key.
func (q FindCustomerQuery) Address() string {
	return q.address
}

// FindCustomerQueryResponse carries the resolved surrogate id.
type FindCustomerQueryResponse struct {
	CustomerID kernel.UUID
}

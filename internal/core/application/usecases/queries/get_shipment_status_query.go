package queries

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var (
	ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
		"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
	)
)

// GetShipmentStatusQuery reads the shipped flag of an order identified
// entirely by natural keys: the book's (title, author) and the customer's
// (name, address). The handler chains the three lookups.
type GetShipmentStatusQuery struct {
	title   string
	author  string
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates a query to read shipment status by
// contents. All four natural key parts must be non-empty.
func NewGetShipmentStatusQuery(title string, author string, name string, address string) (GetShipmentStatusQuery, error) {
	if title == "" {
		return GetShipmentStatusQuery{}, ErrQueryTitleIsRequired
	}
	if author == "" {
		return GetShipmentStatusQuery{}, ErrQueryAuthorIsRequired
	}
	if name == "" {
		return GetShipmentStatusQuery{}, ErrQueryNameIsRequired
	}
	if address == "" {
		return GetShipmentStatusQuery{}, ErrQueryAddressIsRequired
	}

	return GetShipmentStatusQuery{
		title:   title,
		author:  author,
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// Title returns the title part of the book natural key.
func (q GetShipmentStatusQuery) Title() string {
	return q.title
}

// Author returns the author part of the book natural key.
func (q GetShipmentStatusQuery) Author() string {
	return q.author
}

// Name returns the name part of the customer natural key.
func (q GetShipmentStatusQuery) Name() string {
	return q.name
}

// Address returns the address part of the customer natural key.
func (q GetShipmentStatusQuery) Address() string {
	return q.address
}

// GetShipmentStatusQueryResponse carries the shipped flag of the resolved order.
type GetShipmentStatusQueryResponse struct {
	Shipped bool
}

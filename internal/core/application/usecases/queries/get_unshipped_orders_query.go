package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetUnshippedOrdersQueryIsNotConstructed = errors.New(
		"GetUnshippedOrdersQuery must be created via NewGetUnshippedOrdersQuery constructor",
	)
)

// GetUnshippedOrdersQuery retrieves all orders still awaiting shipment.
// Feeds the backlog job and the admin endpoint.
type GetUnshippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnshippedOrdersQuery creates a query to retrieve pending orders.
// This is a parameterless query that fetches all unshipped orders.
func NewGetUnshippedOrdersQuery() GetUnshippedOrdersQuery {
	return GetUnshippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnshippedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnshippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnshippedOrdersQueryIsNotConstructed)
}

// GetUnshippedOrdersQueryResponse represents pending order information.
type GetUnshippedOrdersQueryResponse struct {
	ID         kernel.UUID
	BookID     kernel.UUID
	CustomerID kernel.UUID
}

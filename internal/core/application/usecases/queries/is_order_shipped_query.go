package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrIsOrderShippedQueryIsNotConstructed = errors.New(
		"IsOrderShippedQuery must be created via NewIsOrderShippedQuery constructor",
	)
)

// IsOrderShippedQuery reads the shipped flag of an order by its id.
type IsOrderShippedQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIsOrderShippedQuery creates a query to read an order's shipped flag.
func NewIsOrderShippedQuery(orderID kernel.UUID) (IsOrderShippedQuery, error) {
	if err := orderID.Validate(); err != nil {
		return IsOrderShippedQuery{}, err
	}

	return IsOrderShippedQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q IsOrderShippedQuery) Validate() error {
	return q.guard.Validate(ErrIsOrderShippedQueryIsNotConstructed)
}

// OrderID returns the order to read the shipped flag of.
func (q IsOrderShippedQuery) OrderID() kernel.UUID {
	return q.orderID
}

// IsOrderShippedQueryResponse carries the shipped flag.
type IsOrderShippedQueryResponse struct {
	Shipped bool
}

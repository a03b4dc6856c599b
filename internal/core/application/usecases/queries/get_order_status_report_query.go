package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetOrderStatusReportQueryIsNotConstructed = errors.New(
		"GetOrderStatusReportQuery must be created via NewGetOrderStatusReportQuery constructor",
	)
)

// GetOrderStatusReportQuery assembles the status view of the latest order
// linking a customer and a book: the three ids, the shipped flag, and the
// customer's current shipping address.
type GetOrderStatusReportQuery struct {
	customerID kernel.UUID
	bookID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusReportQuery creates a query to assemble an order status
// report. Both ids must be valid UUIDs.
func NewGetOrderStatusReportQuery(customerID kernel.UUID, bookID kernel.UUID) (GetOrderStatusReportQuery, error) {
	if err := errors.Join(customerID.Validate(), bookID.Validate()); err != nil {
		return GetOrderStatusReportQuery{}, err
	}

	return GetOrderStatusReportQuery{
		customerID: customerID,
		bookID:     bookID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusReportQueryIsNotConstructed)
}

// CustomerID returns the buyer's id.
func (q GetOrderStatusReportQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// BookID returns the ordered book's id.
func (q GetOrderStatusReportQuery) BookID() kernel.UUID {
	return q.bookID
}

// GetOrderStatusReportQueryResponse is the assembled status view.
type GetOrderStatusReportQueryResponse struct {
	OrderID         kernel.UUID
	BookID          kernel.UUID
	CustomerID      kernel.UUID
	Shipped         bool
	ShippingAddress string
}

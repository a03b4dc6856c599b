package queries

import (
	"context"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerBalanceQueryHandler computes customer balances from the order
// and price history. The aggregate lives entirely in SQL; the read model
// never materializes individual orders.
type GetCustomerBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerBalanceQueryHandler creates a handler for balance reads.
func NewGetCustomerBalanceQueryHandler(db *gorm.DB) GetCustomerBalanceQueryHandler {
	return GetCustomerBalanceQueryHandler{db: db}
}

// Handle executes the balance computation: the sum of the prices of every
// book the customer ordered, counting each order separately. Returns
// ObjectNotFoundError for an unknown customer id; a known customer with
// no orders yields zero.
func (h GetCustomerBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerBalanceQuery,
) (GetCustomerBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerBalanceQueryResponse{}, err
	}

	var exists bool
	result := h.db.WithContext(ctx).Raw(`
		SELECT TRUE
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Scan(&exists)
	if result.Error != nil {
		return GetCustomerBalanceQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetCustomerBalanceQueryResponse{}, errs.NewObjectNotFoundError(
			"customer", query.CustomerID().String())
	}

	var balance float64
	result = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(b.price), 0)
		FROM orders o
		JOIN books b ON b.id = o.book_id
		WHERE o.customer_id = ?
	`, query.CustomerID().Bytes()).Scan(&balance)
	if result.Error != nil {
		return GetCustomerBalanceQueryResponse{}, result.Error
	}

	return GetCustomerBalanceQueryResponse{Balance: balance}, nil
}

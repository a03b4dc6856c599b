package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnshippedOrdersQueryHandler retrieves orders awaiting shipment from the database.
// Filters out shipped orders to provide active backlog visibility.
type GetUnshippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnshippedOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetUnshippedOrdersQueryHandler(db *gorm.DB) GetUnshippedOrdersQueryHandler {
	return GetUnshippedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unshipped orders.
// Results are sorted by order ID for consistent output.
func (h GetUnshippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnshippedOrdersQuery,
) ([]GetUnshippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnshippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			book_id,
			customer_id
		FROM orders
		WHERE status != ?
		ORDER BY id
	`, order.Shipped).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, bookID, customerID uuid.UUID

		err = rows.Scan(&id, &bookID, &customerID)
		if err != nil {
			return nil, err
		}

		orderResp := GetUnshippedOrdersQueryResponse{}

		orderResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		orderResp.BookID, err = kernel.UUIDFromBytes(bookID[:])
		if err != nil {
			return nil, err
		}

		orderResp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

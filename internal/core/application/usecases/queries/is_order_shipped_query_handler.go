package queries

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// IsOrderShippedQueryHandler reads shipped flags from the database.
type IsOrderShippedQueryHandler struct {
	db *gorm.DB
}

// NewIsOrderShippedQueryHandler creates a handler for shipped flag reads.
func NewIsOrderShippedQueryHandler(db *gorm.DB) IsOrderShippedQueryHandler {
	return IsOrderShippedQueryHandler{db: db}
}

// Handle executes the read. Returns ObjectNotFoundError for an unknown
// order id.
func (h IsOrderShippedQueryHandler) Handle(
	ctx context.Context,
	query IsOrderShippedQuery,
) (IsOrderShippedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return IsOrderShippedQueryResponse{}, err
	}

	var status int
	result := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&status)
	if result.Error != nil {
		return IsOrderShippedQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return IsOrderShippedQueryResponse{}, errs.NewObjectNotFoundError(
			"order", query.OrderID().String())
	}

	return IsOrderShippedQueryResponse{Shipped: order.Status(status).IsShipped()}, nil
}

package queries

import (
	"context"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusReportQueryHandler assembles order status reports. The
// order lookup by contents and the address lookup run as a single join;
// when several orders link the pair, the most recently created one wins.
type GetOrderStatusReportQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusReportQueryHandler creates a handler for status report
// assembly.
func NewGetOrderStatusReportQueryHandler(db *gorm.DB) GetOrderStatusReportQueryHandler {
	return GetOrderStatusReportQueryHandler{db: db}
}

// Handle executes the report assembly. Returns ObjectNotFoundError when no
// order links the pair; the customer address comes from the joined row, so
// a dangling customer id surfaces the same way.
func (h GetOrderStatusReportQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusReportQuery,
) (GetOrderStatusReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusReportQueryResponse{}, err
	}

	var row struct {
		ID              uuid.UUID
		Status          int
		ShippingAddress string
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.status, c.shipping_address
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.book_id = ? AND o.customer_id = ?
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT 1
	`, query.BookID().Bytes(), query.CustomerID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderStatusReportQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderStatusReportQueryResponse{}, errs.NewObjectNotFoundError(
			"order", fmt.Sprintf("%s/%s", query.BookID(), query.CustomerID()))
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderStatusReportQueryResponse{}, err
	}

	return GetOrderStatusReportQueryResponse{
		OrderID:         orderID,
		BookID:          query.BookID(),
		CustomerID:      query.CustomerID(),
		Shipped:         order.Status(row.Status).IsShipped(),
		ShippingAddress: row.ShippingAddress,
	}, nil
}

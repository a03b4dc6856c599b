package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentStatusQueryHandler chains book, customer, and order lookups
// to read a shipped flag by contents. Any stage missing short-circuits the
// chain with that stage's ObjectNotFoundError.
type GetShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatusQueryHandler creates a handler for content-based
// shipment status reads.
func NewGetShipmentStatusQueryHandler(db *gorm.DB) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{db: db}
}

// Handle executes the chain: book natural key → customer natural key →
// latest order for the pair → shipped flag.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	findBook, err := NewFindBookQuery(query.Title(), query.Author())
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	bookResp, err := NewFindBookQueryHandler(h.db).Handle(ctx, findBook)
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	findCustomer, err := NewFindCustomerQuery(query.Name(), query.Address())
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	customerResp, err := NewFindCustomerQueryHandler(h.db).Handle(ctx, findCustomer)
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	report, err := NewGetOrderStatusReportQuery(customerResp.CustomerID, bookResp.BookID)
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	reportResp, err := NewGetOrderStatusReportQueryHandler(h.db).Handle(ctx, report)
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	return GetShipmentStatusQueryResponse{Shipped: reportResp.Shipped}, nil
}

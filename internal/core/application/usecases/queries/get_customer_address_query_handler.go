package queries

import (
	"context"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerAddressQueryHandler reads shipping addresses from the database.
type GetCustomerAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerAddressQueryHandler creates a handler for address reads.
func NewGetCustomerAddressQueryHandler(db *gorm.DB) GetCustomerAddressQueryHandler {
	return GetCustomerAddressQueryHandler{db: db}
}

// Handle executes the address read.
// Returns ObjectNotFoundError for an unknown customer id.
func (h GetCustomerAddressQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerAddressQuery,
) (GetCustomerAddressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerAddressQueryResponse{}, err
	}

	var address string
	result := h.db.WithContext(ctx).Raw(`
		SELECT shipping_address
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Scan(&address)
	if result.Error != nil {
		return GetCustomerAddressQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetCustomerAddressQueryResponse{}, errs.NewObjectNotFoundError(
			"customer", query.CustomerID().String())
	}

	return GetCustomerAddressQueryResponse{Address: address}, nil
}

package queries

import (
	"context"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindCustomerQueryHandler resolves customer natural keys against the database.
type FindCustomerQueryHandler struct {
	db *gorm.DB
}

// NewFindCustomerQueryHandler creates a handler for customer natural key resolution.
func NewFindCustomerQueryHandler(db *gorm.DB) FindCustomerQueryHandler {
	return FindCustomerQueryHandler{db: db}
}

// Handle executes the lookup. When duplicate natural keys exist, the
// earliest registered customer wins. Returns ObjectNotFoundError when no
// customer matches the key.
func (h FindCustomerQueryHandler) Handle(
	ctx context.Context,
	query FindCustomerQuery,
) (FindCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindCustomerQueryResponse{}, err
	}

	var id uuid.UUID
	result := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM customers
		WHERE name = ? AND shipping_address = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, query.Name(), query.Address()).Scan(&id)
	if result.Error != nil {
		return FindCustomerQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return FindCustomerQueryResponse{}, errs.NewObjectNotFoundError(
			"customer", fmt.Sprintf("%s/%s", query.Name(), query.Address()))
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return FindCustomerQueryResponse{}, err
	}

	return FindCustomerQueryResponse{CustomerID: customerID}, nil
}

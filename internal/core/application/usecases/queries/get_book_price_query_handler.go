package queries

import (
	"context"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBookPriceQueryHandler reads book prices from the database. Resolves
// the natural key first and then reads the price by id, mirroring the
// two lookups callers would otherwise chain themselves.
type GetBookPriceQueryHandler struct {
	db *gorm.DB
}

// NewGetBookPriceQueryHandler creates a handler for price reads.
func NewGetBookPriceQueryHandler(db *gorm.DB) GetBookPriceQueryHandler {
	return GetBookPriceQueryHandler{db: db}
}

// Handle executes the price read. Either the key resolution or the price
// read missing short-circuits with ObjectNotFoundError.
func (h GetBookPriceQueryHandler) Handle(
	ctx context.Context,
	query GetBookPriceQuery,
) (GetBookPriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookPriceQueryResponse{}, err
	}

	findQuery, err := NewFindBookQuery(query.Title(), query.Author())
	if err != nil {
		return GetBookPriceQueryResponse{}, err
	}

	found, err := NewFindBookQueryHandler(h.db).Handle(ctx, findQuery)
	if err != nil {
		return GetBookPriceQueryResponse{}, err
	}

	var price float64
	result := h.db.WithContext(ctx).Raw(`
		SELECT price
		FROM books
		WHERE id = ?
	`, found.BookID.Bytes()).Scan(&price)
	if result.Error != nil {
		return GetBookPriceQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetBookPriceQueryResponse{}, errs.NewObjectNotFoundError("book", found.BookID.String())
	}

	return GetBookPriceQueryResponse{Price: price}, nil
}

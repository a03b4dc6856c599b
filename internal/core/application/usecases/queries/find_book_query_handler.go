package queries

import (
	"context"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindBookQueryHandler resolves book natural keys against the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type FindBookQueryHandler struct {
	db *gorm.DB
}

// NewFindBookQueryHandler creates a handler for book natural key resolution.
// Requires a GORM database connection for query execution.
func NewFindBookQueryHandler(db *gorm.DB) FindBookQueryHandler {
	return FindBookQueryHandler{db: db}
}

// Handle executes the lookup. When duplicate natural keys exist, the
// earliest registered book wins. Returns ObjectNotFoundError when no book
// matches the key.
func (h FindBookQueryHandler) Handle(
	ctx context.Context,
	query FindBookQuery,
) (FindBookQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindBookQueryResponse{}, err
	}

	var id uuid.UUID
	result := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM books
		WHERE title = ? AND author = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, query.Title(), query.Author()).Scan(&id)
	if result.Error != nil {
		return FindBookQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return FindBookQueryResponse{}, errs.NewObjectNotFoundError(
			"book", fmt.Sprintf("%s/%s", query.Title(), query.Author()))
	}

	bookID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return FindBookQueryResponse{}, err
	}

	return FindBookQueryResponse{BookID: bookID}, nil
}

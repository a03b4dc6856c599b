package ports

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
)

// BookRepository defines the persistence contract for book aggregates.
// Books are written once at registration and read either by surrogate id
// or by natural key.
type BookRepository interface {
	// Add persists a new book aggregate to storage.
	// No uniqueness check on the natural key is performed here; callers
	// that enforce uniqueness look the key up first inside the same
	// transaction.
	Add(ctx context.Context, aggregate *book.Book) error

	// Get retrieves a book aggregate by its surrogate id.
	// Returns ObjectNotFoundError if the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// FindByTitleAndAuthor resolves a book by its natural key.
	// If multiple rows share the natural key, the earliest registered one
	// wins. Returns ObjectNotFoundError if none exists.
	FindByTitleAndAuthor(ctx context.Context, title string, author string) (*book.Book, error)
}

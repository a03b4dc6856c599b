// Package bookrepo provides data transfer objects and mapping functions for book persistence.
// This package implements the repository pattern for the book domain aggregate, handling
// the conversion between domain entities and database representations.
package bookrepo

import (
	"time"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookDTO represents the database structure for persisting book aggregates.
// The (title, author) pair is the natural key; it is indexed but not
// unique at the schema level, so duplicate keys remain resolvable —
// CreatedAt orders them and the earliest row wins lookups.
type BookDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"index:idx_books_natural_key"`
	Author    string    `gorm:"index:idx_books_natural_key"`
	Price     float64
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for book entities.
// Overrides GORM's default naming convention to use "books".
func (BookDTO) TableName() string {
	return "books"
}

// fromDomain converts a book domain aggregate to its database representation.
func fromDomain(book *book.Book) BookDTO {
	return BookDTO{
		ID:     book.ID().Bytes(),
		Title:  book.Title(),
		Author: book.Author(),
		Price:  book.Price(),
	}
}

// toDomain converts a database DTO to a book domain aggregate using RestoreBook.
func toDomain(dto BookDTO) (*book.Book, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return book.RestoreBook(id, dto.Title, dto.Author, dto.Price)
}

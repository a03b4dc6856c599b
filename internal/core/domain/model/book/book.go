package book

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

// Domain errors for book operations.
var (
	// ErrTitleIsRequired is returned when attempting to create a book without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrAuthorIsRequired is returned when attempting to create a book without an author.
	ErrAuthorIsRequired = errs.NewValueIsRequiredError("author")
	// ErrBookIsNotConstructed is returned when using an improperly initialized Book.
	ErrBookIsNotConstructed = errors.New("Book must be created via NewBook constructor")
)

// Book represents a catalog entry identified by a surrogate id.
// Its natural key is the (title, author) pair, used to resolve the id
// before it is known; after creation a book is never modified.
//
// Business rules:
//   - Title and author must be non-empty
//   - Price must be non-negative
//   - Can only be created through NewBook or RestoreBook
type Book struct {
	// id is the surrogate identifier assigned at registration
	id kernel.UUID
	// title and author together form the natural key
	title  string
	author string
	// price is the list price, non-negative
	price float64
	// guard ensures the book was properly constructed
	guard guard.ConstructorGuard
}

// NewBook creates a new Book with the given natural key and price.
// All parameters are validated; errors are aggregated with errors.Join.
//
// Example:
//
//	b, err := book.NewBook(kernel.NewUUID(), "Dune", "Herbert", 15.50)
//	if err != nil {
//	    // handle validation error
//	}
func NewBook(id kernel.UUID, title string, author string, price float64) (*Book, error) {
	b := &Book{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setTitle(title),
		b.setAuthor(author),
		b.setPrice(price),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBook reconstructs a Book from persistent storage.
// It applies the same validation as NewBook so corrupted rows are
// rejected at the persistence boundary.
func RestoreBook(id kernel.UUID, title string, author string, price float64) (*Book, error) {
	return NewBook(id, title, author, price)
}

// Validate ensures the Book instance was properly constructed.
func (b *Book) Validate() error {
	if b == nil {
		return ErrBookIsNotConstructed
	}
	return b.guard.Validate(ErrBookIsNotConstructed)
}

// IsEqual compares two books by their surrogate ids.
func (b *Book) IsEqual(other *Book) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the book's surrogate identifier.
func (b *Book) ID() kernel.UUID {
	return b.id
}

// Title returns the book's title.
func (b *Book) Title() string {
	return b.title
}

// Author returns the book's author.
func (b *Book) Author() string {
	return b.author
}

// Price returns the book's list price.
func (b *Book) Price() float64 {
	return b.price
}

func (b *Book) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Book) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	b.title = title
	return nil
}

func (b *Book) setAuthor(author string) error {
	if author == "" {
		return ErrAuthorIsRequired
	}
	b.author = author
	return nil
}

func (b *Book) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	b.price = price
	return nil
}

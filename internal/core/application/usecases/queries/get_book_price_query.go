package queries

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var (
	ErrGetBookPriceQueryIsNotConstructed = errors.New(
		"GetBookPriceQuery must be created via NewGetBookPriceQuery constructor",
	)
)

// GetBookPriceQuery reads a book's price by natural key. The id resolution
// and the price read are separate steps; either missing yields NotFound.
type GetBookPriceQuery struct {
	title  string
	author string

	guard guard.ConstructorGuard
}

// NewGetBookPriceQuery creates a query to read a book's price.
func NewGetBookPriceQuery(title string, author string) (GetBookPriceQuery, error) {
	if title == "" {
		return GetBookPriceQuery{}, ErrQueryTitleIsRequired
	}
	if author == "" {
		return GetBookPriceQuery{}, ErrQueryAuthorIsRequired
	}

	return GetBookPriceQuery{
		title:  title,
		author: author,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetBookPriceQueryIsNotConstructed)
}

// Title returns the title part of the natural key.
func (q GetBookPriceQuery) Title() string {
	return q.title
}

// Author returns the author part of the natural key.
func (q GetBookPriceQuery) Author() string {
	return q.author
}

// GetBookPriceQueryResponse carries the price of the resolved book.
type GetBookPriceQueryResponse struct {
	Price float64
}

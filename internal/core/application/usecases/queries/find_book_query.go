// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrFindBookQueryIsNotConstructed = errors.New(
		"FindBookQuery must be created via NewFindBookQuery constructor",
	)
	ErrQueryTitleIsRequired  = errs.NewValueIsRequiredError("title")
	ErrQueryAuthorIsRequired = errs.NewValueIsRequiredError("author")
)

// FindBookQuery resolves a book's surrogate id from its natural key.
//
// Example:
//
//	query, err := NewFindBookQuery("Dune", "Herbert")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFindBookQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("book lookup failed: %w", err)
//	}
//	fmt.Printf("Book id: %s\n", resp.BookID)
type FindBookQuery struct {
	title  string
	author string

	guard guard.ConstructorGuard
}

// NewFindBookQuery creates a query to resolve a book by (title, author).
// Both parts of the natural key must be non-empty.
func NewFindBookQuery(title string, author string) (FindBookQuery, error) {
	if title == "" {
		return FindBookQuery{}, ErrQueryTitleIsRequired
	}
	if author == "" {
		return FindBookQuery{}, ErrQueryAuthorIsRequired
	}

	return FindBookQuery{
		title:  title,
		author: author,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindBookQuery) Validate() error {
	return q.guard.Validate(ErrFindBookQueryIsNotConstructed)
}

// Title returns the title part of the natural key.
func (q FindBookQuery) Title() string {
	return q.title
}

// Author returns the author part of the natural key.
func (q FindBookQuery) Author() string {
	return q.author
}

// FindBookQueryResponse carries the resolved surrogate id.
type FindBookQueryResponse struct {
	BookID kernel.UUID
}

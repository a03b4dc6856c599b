package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrRegisterBookCommandIsNotConstructed = errors.New(
		"RegisterBookCommand must be created via NewRegisterBookCommand constructor",
	)
	ErrBookTitleIsRequired  = errs.NewValueIsRequiredError("title")
	ErrBookAuthorIsRequired = errs.NewValueIsRequiredError("author")
	ErrBookPriceIsInvalid   = errs.NewValueIsInvalidError("price must not be negative")
)

// RegisterBookCommand represents a request to add a book to the catalog.
// The book id is minted by the caller so it can be returned once the
// command succeeds.
//
// Example:
//
//	bookID := kernel.NewUUID()
//	cmd, err := NewRegisterBookCommand(bookID, "Dune", "Herbert", 15.50)
//	if err != nil {
//	    return fmt.Errorf("invalid book data: %w", err)
//	}
//
//	handler := NewRegisterBookCommandHandler(uowFactory, false)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register book: %w", err)
//	}
type RegisterBookCommand struct { //nolint:recvcheck //using for validation
	bookID kernel.UUID
	title  string
	author string
	price  float64

	guard guard.ConstructorGuard
}

// NewRegisterBookCommand creates a command to register a new catalog book.
// Validates that the id is valid, title and author are non-empty, and the
// price is non-negative.
func NewRegisterBookCommand(bookID kernel.UUID, title string, author string, price float64) (RegisterBookCommand, error) {
	bookCommand := RegisterBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookCommand.setBookID(bookID),
		bookCommand.setTitle(title),
		bookCommand.setAuthor(author),
		bookCommand.setPrice(price),
	); err != nil {
		return RegisterBookCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterBookCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBookCommandIsNotConstructed)
}

// BookID returns the surrogate identifier minted for the book.
func (c RegisterBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// Title returns the book title.
func (c RegisterBookCommand) Title() string {
	return c.title
}

// Author returns the book author.
func (c RegisterBookCommand) Author() string {
	return c.author
}

// Price returns the book list price.
func (c RegisterBookCommand) Price() float64 {
	return c.price
}

func (c *RegisterBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *RegisterBookCommand) setTitle(title string) error {
	if title == "" {
		return ErrBookTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *RegisterBookCommand) setAuthor(author string) error {
	if author == "" {
		return ErrBookAuthorIsRequired
	}

	c.author = author
	return nil
}

func (c *RegisterBookCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrBookPriceIsInvalid
	}

	c.price = price
	return nil
}

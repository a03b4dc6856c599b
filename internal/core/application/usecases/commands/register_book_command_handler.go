package commands

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/pkg/errs"
)

// RegisterBookCommandHandler handles the business logic for catalog
// registration. Inserts a new book row; when natural-key uniqueness is
// enforced, a book with the same (title, author) pair is rejected inside
// the registration transaction.
type RegisterBookCommandHandler struct {
	uowFactory        BookUoWFactory
	enforceUniqueKeys bool
}

// NewRegisterBookCommandHandler creates a handler for book registration.
// enforceUniqueKeys selects whether duplicate natural keys are rejected
// or allowed as distinct catalog entries.
func NewRegisterBookCommandHandler(uowFactory BookUoWFactory, enforceUniqueKeys bool) RegisterBookCommandHandler {
	return RegisterBookCommandHandler{
		uowFactory:        uowFactory,
		enforceUniqueKeys: enforceUniqueKeys,
	}
}

// Handle processes the book registration command.
// Uses a transaction so the optional uniqueness check and the insert are
// atomic; rolls back on any error.
func (h *RegisterBookCommandHandler) Handle(ctx context.Context, cmd RegisterBookCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookRepo := uow.BookRepository()

	if h.enforceUniqueKeys {
		_, err := bookRepo.FindByTitleAndAuthor(ctx, cmd.Title(), cmd.Author())
		if err == nil {
			return errs.NewObjectAlreadyExistsError("title+author",
				fmt.Sprintf("%s/%s", cmd.Title(), cmd.Author()))
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	bookEntity, err := book.NewBook(cmd.BookID(), cmd.Title(), cmd.Author(), cmd.Price())
	if err != nil {
		return err
	}

	if err = bookRepo.Add(ctx, bookEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order
// placement. Creates orders in the Created status; repeated commands for
// the same (book, customer) pair create distinct orders. Referential
// integrity of the book and customer ids is enforced by the store's
// foreign keys and surfaces as ReferenceIsInvalidError.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Uses a transaction to ensure the order is fully persisted or rolled
// back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderEntity, err := order.NewPurchaseOrder(cmd.OrderID(), cmd.BookID(), cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
)

// UpdateCustomerAddressCommandHandler handles shipping address changes.
// Loads the customer, applies the change through the aggregate, and
// persists it; an unknown customer id surfaces as ObjectNotFoundError
// from the repository.
type UpdateCustomerAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerAddressCommandHandler creates a handler for address
// change operations.
func NewUpdateCustomerAddressCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerAddressCommandHandler {
	return UpdateCustomerAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address change command.
// The read-modify-write runs inside one transaction and rolls back on any
// error.
func (h *UpdateCustomerAddressCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerAddressCommand) error {
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

	customerRepo := uow.CustomerRepository()
	customerEntity, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customerEntity.ChangeAddress(cmd.Address()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

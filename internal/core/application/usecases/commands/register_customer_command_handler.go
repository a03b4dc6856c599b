package commands

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/customer"
	"bookstore/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Inserts a new customer row; when natural-key uniqueness is
// enforced, a customer with the same (name, address) pair is rejected
// inside the registration transaction.
type RegisterCustomerCommandHandler struct {
	uowFactory        CustomerUoWFactory
	enforceUniqueKeys bool
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration. enforceUniqueKeys selects whether duplicate natural keys
// are rejected or allowed as distinct customers.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory, enforceUniqueKeys bool) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory:        uowFactory,
		enforceUniqueKeys: enforceUniqueKeys,
	}
}

// Handle processes the customer registration command.
// Uses a transaction so the optional uniqueness check and the insert are
// atomic; rolls back on any error.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	if h.enforceUniqueKeys {
		_, err := customerRepo.FindByNameAndAddress(ctx, cmd.Name(), cmd.ShippingAddress())
		if err == nil {
			return errs.NewObjectAlreadyExistsError("name+shippingAddress",
				fmt.Sprintf("%s/%s", cmd.Name(), cmd.ShippingAddress()))
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	customerEntity, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.ShippingAddress())
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, customerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var (
	ErrUpdateCustomerAddressCommandIsNotConstructed = errors.New(
		"UpdateCustomerAddressCommand must be created via NewUpdateCustomerAddressCommand constructor",
	)
)

// UpdateCustomerAddressCommand represents a request to overwrite a
// customer's shipping address. Identity and existing orders are
// unaffected.
type UpdateCustomerAddressCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerAddressCommand creates a command to change a
// customer's shipping address. Validates that the id is valid and the new
// address is non-empty.
func NewUpdateCustomerAddressCommand(customerID kernel.UUID, address string) (UpdateCustomerAddressCommand, error) {
	addressCommand := UpdateCustomerAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setCustomerID(customerID),
		addressCommand.setAddress(address),
	); err != nil {
		return UpdateCustomerAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerAddressCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the new shipping address.
func (c UpdateCustomerAddressCommand) Address() string {
	return c.address
}

func (c *UpdateCustomerAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerAddressCommand) setAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}

	c.address = address
	return nil
}

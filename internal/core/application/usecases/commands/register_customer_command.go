package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrCustomerAddressIsRequired = errs.NewValueIsRequiredError("shippingAddress")
)

// RegisterCustomerCommand represents a request to register a new customer.
// The customer id is minted by the caller so it can be returned once the
// command succeeds.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	name            string
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer.
// Validates that the id is valid and name and address are non-empty.
func NewRegisterCustomerCommand(customerID kernel.UUID, name string, shippingAddress string) (RegisterCustomerCommand, error) {
	customerCommand := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
		customerCommand.setAddress(shippingAddress),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the surrogate identifier minted for the customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// ShippingAddress returns the initial shipping address.
func (c RegisterCustomerCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}

	c.shippingAddress = address
	return nil
}

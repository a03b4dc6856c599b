package customer

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when the shipping address is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("shippingAddress")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a buyer identified by a surrogate id.
// The (name, shippingAddress) pair is the natural key at creation time
// only: once the customer exists, the shipping address may change without
// affecting identity or any existing purchase orders.
//
// Business rules:
//   - Name must be non-empty and never changes
//   - Shipping address must be non-empty, mutable via ChangeAddress
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	// id is the surrogate identifier assigned at registration
	id kernel.UUID
	// name is part of the natural key and immutable
	name string
	// shippingAddress is mutable after creation
	shippingAddress string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the given name and shipping
// address. All parameters are validated; errors are aggregated with
// errors.Join.
func NewCustomer(id kernel.UUID, name string, shippingAddress string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage,
// applying the same validation as NewCustomer.
func RestoreCustomer(id kernel.UUID, name string, shippingAddress string) (*Customer, error) {
	return NewCustomer(id, name, shippingAddress)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their surrogate ids.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's surrogate identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// ShippingAddress returns the current shipping address.
func (c *Customer) ShippingAddress() string {
	return c.shippingAddress
}

// ChangeAddress overwrites the shipping address.
// Identity is untouched: orders created under the old address keep
// referencing the same customer.
func (c *Customer) ChangeAddress(newAddress string) error {
	return c.setAddress(newAddress)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.shippingAddress = address
	return nil
}

package ports

import (
	"context"

	"bookstore/internal/core/domain/model/customer"
	"bookstore/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates. The natural key (name, address) is only meaningful at
// creation time; afterwards customers are addressed by surrogate id.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// No uniqueness check on the natural key is performed here.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate,
	// currently only the shipping address. Returns ObjectNotFoundError
	// if the customer does not exist.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its surrogate id.
	// Returns ObjectNotFoundError if the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// FindByNameAndAddress resolves a customer by the natural key used at
	// creation time. If multiple rows share the key, the earliest
	// registered one wins. Returns ObjectNotFoundError if none exists.
	FindByNameAndAddress(ctx context.Context, name string, address string) (*customer.Customer, error)
}

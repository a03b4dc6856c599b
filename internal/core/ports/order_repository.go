package ports

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order
// aggregates. Orders are inserted at creation and updated only by the
// ship transition.
type OrderRepository interface {
	// Add persists a new purchase order aggregate to storage.
	// The referenced book and customer must exist; the store's foreign
	// key constraints surface violations as ReferenceIsInvalidError.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves a purchase order aggregate by its surrogate id.
	// Returns ObjectNotFoundError if the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// FindLatestByContents retrieves the purchase order matching both
	// ids. Multiple orders may exist for the same (book, customer) pair;
	// the most recently created one wins. Returns ObjectNotFoundError if
	// none exists.
	FindLatestByContents(ctx context.Context, bookID kernel.UUID, customerID kernel.UUID) (*order.PurchaseOrder, error)
}

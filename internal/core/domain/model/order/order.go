package order

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when a PurchaseOrder instance was not
	// created through the NewPurchaseOrder factory method. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder constructor")
)

// PurchaseOrder is the aggregate root linking one book to one customer for
// a single order event, tracked through the shipped/unshipped lifecycle.
//
// PurchaseOrder follows these invariants:
//   - Must have valid identifiers for itself, the book, and the customer
//   - Status transitions follow the Created -> Shipped machine; shipping
//     is monotonic and idempotent
//   - Can only be created through NewPurchaseOrder or RestorePurchaseOrder
//
// Referential existence of the book and customer is not checked here; the
// store enforces it on insert and surfaces violations as referential
// errors.
type PurchaseOrder struct {
	// id is the surrogate identifier for the order
	id kernel.UUID

	// bookID references the ordered book
	bookID kernel.UUID

	// customerID references the buyer
	customerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewPurchaseOrder creates a new PurchaseOrder in the Created status.
// This is the only way to create a fresh order, ensuring all identifiers
// are valid.
//
// Example:
//
//	o, err := order.NewPurchaseOrder(kernel.NewUUID(), bookID, customerID)
//	if err != nil {
//	    // handle validation error
//	}
//	// o.Status() == order.Created, o.IsShipped() == false
func NewPurchaseOrder(id kernel.UUID, bookID kernel.UUID, customerID kernel.UUID) (*PurchaseOrder, error) {
	o := &PurchaseOrder{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBookID(bookID),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestorePurchaseOrder reconstructs a PurchaseOrder from persistent
// storage. Unlike NewPurchaseOrder it accepts any valid status, so
// shipped orders come back shipped.
func RestorePurchaseOrder(
	id kernel.UUID,
	bookID kernel.UUID,
	customerID kernel.UUID,
	status Status,
) (*PurchaseOrder, error) {
	o, err := NewPurchaseOrder(id, bookID, customerID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the PurchaseOrder instance was properly constructed.
// Called when reconstructing orders from persistence to keep corrupted
// data out of the domain.
func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their surrogate ids.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's surrogate identifier.
func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

// BookID returns the identifier of the ordered book.
func (o *PurchaseOrder) BookID() kernel.UUID {
	return o.bookID
}

// CustomerID returns the identifier of the buyer.
func (o *PurchaseOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *PurchaseOrder) Status() Status {
	return o.status
}

// IsShipped reports whether the order has reached the Shipped state.
func (o *PurchaseOrder) IsShipped() bool {
	return o.status.IsShipped()
}

// Ship marks the order as shipped.
//
// The transition is monotonic and idempotent: a Created order becomes
// Shipped, a Shipped order stays Shipped without error. Only an invalid
// status (never produced by the constructors) is rejected.
func (o *PurchaseOrder) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *PurchaseOrder) setBookID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.bookID = id
	return nil
}

func (o *PurchaseOrder) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

// Package order provides domain entities and business logic for purchase
// order management in the bookstore system. It implements the
// PurchaseOrder aggregate root with lifecycle management and state
// transitions.
//
// The package includes:
//   - PurchaseOrder: the aggregate root linking one book to one customer
//   - Status: a state machine that enforces valid shipment transitions
//
// Key business rules:
//   - Orders must reference valid book and customer identifiers
//   - Order status follows a defined workflow: Created -> Shipped
//   - Shipping is monotonic: no sequence of operations returns a shipped
//     order to the unshipped state
//   - Shipping is idempotent: shipping an already shipped order succeeds
//     and changes nothing
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order

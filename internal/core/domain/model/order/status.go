package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// shipment progress is monotonic.
//
// State transitions:
//
//	Created ──> Shipped ──┐
//	               ^      │
//	               └──────┘
//	        (shipping again is a no-op)
//
// Shipped is terminal: no transition ever leaves it, so a shipped order
// can never be observed as unshipped again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a purchase order is placed.
	// Orders in this status are waiting to be shipped.
	Created

	// Shipped indicates the order has left the warehouse.
	// This is a final state with no further transitions allowed.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Created: "Created",
		Shipped: "Shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created: "Created",
		Shipped: "Shipped",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Shipped. Unknown (0) and any other values
// are invalid. Used to reject bad status values coming from the store.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsShipped reports whether the status is the terminal Shipped state.
func (s Status) IsShipped() bool {
	return s == Shipped
}

// ValidateShip checks if the status allows shipping without performing
// the transition.
//
// Valid statuses for shipping:
//   - Created (first shipment)
//   - Shipped (repeated ship calls are permitted and change nothing)
//
// Unknown and out-of-range values are rejected.
func (s Status) ValidateShip() error {
	if s != Created && s != Shipped {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Created -> Shipped (first shipment)
//   - Shipped -> Shipped (idempotent repeat)
//
// Invalid transitions:
//   - Unknown -> Shipped (invalid initial state)
//
// Returns (0, error) if the transition is not allowed from the current
// status. The transition set guarantees monotonicity: once Shipped, a
// status can only ever map to Shipped again.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateShip(); err != nil {
		return 0, err
	}

	return Shipped, nil
}

// Package customer provides the buyer side of the bookstore domain model.
// A Customer is resolved by the (name, shippingAddress) pair at creation
// time; afterwards the address may change while identity stays fixed.
package customer

// Package kernel contains shared domain primitives used across the
// bookstore model. Its single concern is identity: the UUID value object
// that every aggregate (book, customer, purchase order) uses as its
// surrogate id after natural-key resolution.
package kernel

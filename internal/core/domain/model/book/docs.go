// Package book provides the catalog side of the bookstore domain model.
// A Book is resolved by its natural key (title, author) before its
// surrogate id is known, and is immutable once registered.
package book

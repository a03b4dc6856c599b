// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to reject zero-value instances.
//
// A ConstructorGuard embedded in a struct records whether the struct was
// built through its designated constructor. Validate methods check the
// guard before any operation, so an object created by direct struct
// initialization always fails validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller
// does not supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding object went through its
// constructor. The zero value is "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Constructors assign it to the guard field of the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

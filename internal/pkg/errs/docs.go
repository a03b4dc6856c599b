// Package errs provides standardized error types for the bookstore
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the failure modes the order
// domain distinguishes:
//   - ObjectNotFoundError: a referenced natural key or id is absent
//   - ObjectAlreadyExistsError: a natural key uniqueness conflict
//   - ReferenceIsInvalidError: a write referencing a nonexistent entity
//   - ValueIsInvalidError: a value outside its allowed domain
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The transport layer classifies failures with errors.Is against the
// sentinels; the domain core itself never inspects or suppresses errors.
package errs

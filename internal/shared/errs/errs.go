package errs

import "errors"

// The three error kinds every service operation can return. Domain packages
// declare their own sentinels wrapping one of these so handlers can map a
// result to an HTTP status with errors.Is without knowing the domain.
var (
	// ErrInvariantViolation signals a write that did not produce the expected
	// effect (no id returned, no row deleted) or a rejected payload.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNotFound signals a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthorizationDenied signals a caller acting on a resource it does
	// not own.
	ErrAuthorizationDenied = errors.New("authorization denied")
)

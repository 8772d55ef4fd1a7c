// Package store provides the fixed in-memory user records backing
// authentication.
package store

import "context"

// ErrNotFound is returned when no user record matches a lookup.
const ErrNotFound Error = "not found"

// Error is an error type returned by the store implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// User is a single user record. Records are immutable once the store is
// constructed.
type User struct {
	Username string
	Password string
}

// Users are the methods on a store implementation that are responsible for
// looking up users.
type Users interface {
	// FindByName returns the first user record whose username matches name
	// byte-exactly. An [ErrNotFound] is returned if no record matches.
	FindByName(ctx context.Context, name string) (User, error)
}

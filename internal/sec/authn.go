package sec

import (
	"context"
	"net/http"

	"github.com/posternapp/postern/internal/store"
)

const (
	// ErrUserNotFound is returned when the supplied username matches no record.
	ErrUserNotFound Error = "user not found"
	// ErrUserNotAuthenticated is returned when the username matches a record
	// but the password does not.
	ErrUserNotAuthenticated Error = "user not authenticated"
)

// Error is an error type returned by the access check.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Credentials are the username and password supplied with a single request.
// They are extracted by the HTTP layer and discarded when the request ends.
type Credentials struct {
	Username string
	Password string
}

// FromRequest extracts Basic Auth credentials from req. The second return is
// false if the request carries no parseable Authorization header.
func FromRequest(req *http.Request) (Credentials, bool) {
	username, password, ok := req.BasicAuth()
	if !ok {
		return Credentials{}, false
	}
	return Credentials{Username: username, Password: password}, true
}

// Access is a single request's access check, bound to the credentials that
// arrived with the request and a lookup against the shared user store. A new
// Access is constructed per request and discarded afterwards.
type Access struct {
	credentials Credentials
	users       store.Users
}

// NewAccess binds credentials and a user lookup into an access check.
func NewAccess(credentials Credentials, users store.Users) *Access {
	return &Access{credentials: credentials, users: users}
}

// Check resolves the user identified by the bound credentials. It returns
// [ErrUserNotFound] if the username matches no record and
// [ErrUserNotAuthenticated] if the record's password does not match exactly.
func (a *Access) Check(ctx context.Context) (store.User, error) {
	user, err := a.users.FindByName(ctx, a.credentials.Username)
	if err != nil {
		return store.User{}, ErrUserNotFound
	}
	if user.Password != a.credentials.Password {
		return store.User{}, ErrUserNotAuthenticated
	}
	return user, nil
}

type userKey struct{}

// UserFrom returns the authenticated user stored in ctx. Returns a zero-value
// User if the context has no authenticated user (should only happen if the
// middleware is misconfigured).
func UserFrom(ctx context.Context) store.User {
	if user, ok := ctx.Value(userKey{}).(store.User); ok {
		return user
	}
	return store.User{}
}

// WithUser records the authenticated user on the context. The auth middleware
// injects this automatically; this function is provided as a convenience for
// testing.
func WithUser(ctx context.Context, user store.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

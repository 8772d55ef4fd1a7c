// Package sec provides the authentication primitives for the web application.
//
// # Authentication
//
// Authentication uses HTTP Basic Auth. Credentials are compared against the
// plaintext records in the user store with an exact string match.
//
// IMPORTANT: Basic Auth transmits credentials in base64 encoding (not
// encrypted). TLS must be used in production to protect credentials in
// transit.
//
// # Components
//
//   - [FromRequest]: Extracts Basic Auth credentials from a request
//   - [Access]: Per-request access check bound to credentials and a lookup
//   - [UserFrom], [WithUser]: Context accessors for the authenticated user
package sec

// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must support errors.Unwrap for proper interoperability with
// standard error helpers, and report optional fields via comma-ok accessors
// rather than sentinel values.
package contract

// Error is the minimal, stable surface that other packages can depend on
// without knowing the concrete kind type parameter.
//
// Implementations must:
//   - Support errors.Unwrap via Unwrap() so generic chain-walking code works.
//   - Return ok=false from Message when no message was ever set, so an
//     explicitly set empty message stays distinguishable from "never set".
//   - Return ok=false from Location for values built without call-site
//     capture and for all values in non-debug builds.
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal and transport-agnostic.
type Error interface {
	error
	Unwrap() error
	Message() (msg string, ok bool)
	Location() (file string, line int, ok bool)
}

// Package cause provides a tiny generic wrapper that turns a caller-defined
// error-kind value into a chainable error.
//
// It exposes a single concrete type Cause[T] that implements contract.Error
// and integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Kind: the caller's classification value, immutable after construction
//   - Optional human-readable message set via Msg
//   - Optional underlying cause set via Src, preserved for errors.Is / errors.As
//   - Optional call-site file/line, recorded by Here/HereMsg only when the
//     module is built with the causedebug tag
//
// Construction options are available via E and With* helpers, and Wrap/Ensure
// provide convenient utilities for adapting arbitrary errors.
package cause

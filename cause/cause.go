// Package cause provides a tiny generic wrapper that turns a caller-defined
// error-kind value into a chainable error with optional message, underlying
// cause, and debug-build call-site metadata.
package cause

import (
	"fmt"

	"github.com/next-trace/scg-cause/contract"
)

// Cause is the canonical classified-error wrapper.
//
// Fields:
//   - kind: the caller's classification value (e.g. an enum constant)
//   - msg:  optional human-readable detail
//   - src:  optional underlying cause, exposed via Unwrap
//   - file/line: call site, recorded only by Here/HereMsg in debug builds
type Cause[T any] struct {
	kind   T
	msg    string
	msgSet bool
	src    error
	file   string
	line   int
}

// compile-time guarantee that *Cause implements contract.Error
var _ contract.Error = (*Cause[int])(nil)

// New creates a Cause carrying the given kind, with no message, no source
// and no location.
func New[T any](kind T) *Cause[T] {
	return &Cause[T]{kind: kind}
}

// ------ standard error interface

// Error renders the wrapper.
//
// Layout: "{kind}[: {message}][ [{file}:{line}]]" followed, when a source is
// present, by a blank line, the literal "Caused by:" line and the source's
// own rendering indented by 4 spaces plus a trailing newline. The kind is
// rendered through %v, so a Stringer kind prints its display form and any
// other kind falls back to Go's default value rendering.
func (c *Cause[T]) Error() string {
	if c == nil {
		return "<nil>"
	}

	head := fmt.Sprintf("%v", c.kind)
	if c.msgSet {
		head = fmt.Sprintf("%s: %s", head, c.msg)
	}

	if c.file != "" {
		head = fmt.Sprintf("%s [%s:%d]", head, c.file, c.line)
	}

	if c.src != nil {
		head = fmt.Sprintf("%s\n\nCaused by:\n    %v\n", head, c.src)
	}

	return head
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (c *Cause[T]) Unwrap() error { return c.src }

// ------ getters

// Kind returns the classification value the wrapper was created with.
// It is the Go rendition of dereferencing the wrapper.
func (c *Cause[T]) Kind() T { return c.kind }

// Message returns the stored message. ok is false iff Msg was never called,
// so an explicitly set empty message remains distinguishable.
func (c *Cause[T]) Message() (string, bool) { return c.msg, c.msgSet }

// Location returns the recorded call site. ok is false for wrappers built
// via New/E/Wrap/Ensure, and for every wrapper in non-debug builds.
func (c *Cause[T]) Location() (string, int, bool) {
	if c.file == "" {
		return "", 0, false
	}

	return c.file, c.line, true
}

// ------ fluent builders (chainable, mutate receiver intentionally)

// Msg sets the message and returns the same receiver for chaining.
// Calling it again overwrites the previous message.
func (c *Cause[T]) Msg(msg string) *Cause[T] {
	if c == nil {
		return nil
	}

	c.msg = msg
	c.msgSet = true

	return c
}

// Src stores the underlying cause and returns the same receiver for chaining.
// Calling it again overwrites the previous cause.
func (c *Cause[T]) Src(src error) *Cause[T] {
	if c == nil {
		return nil
	}

	c.src = src

	return c
}

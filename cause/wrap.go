package cause

import (
	"errors"
)

// Wrap attaches a cause to a new wrapper in one call. If cause is nil, an
// opaque cause is created. It preserves the original cause for
// errors.Is / errors.As via Unwrap().
func Wrap[T any](kind T, cause error) *Cause[T] {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return New(kind).Src(cause)
}

// Ensure converts any error to *Cause[T].
//
// Behavior:
//   - nil input => nil output
//   - if err already is a *Cause[T] => returned as-is (same pointer)
//   - otherwise wrap it under the given fallback kind
func Ensure[T any](fallback T, err error) *Cause[T] {
	if err == nil {
		return nil
	}

	var c *Cause[T]

	if errors.As(err, &c) {
		return c
	}

	return Wrap(fallback, err)
}

package cause

// Option configures a Cause during construction via E().
type Option[T any] func(*Cause[T])

// WithMessage sets the human-readable message during E() construction.
func WithMessage[T any](msg string) Option[T] {
	return func(c *Cause[T]) {
		c.msg = msg
		c.msgSet = true
	}
}

// WithSource sets the underlying cause to be returned by Unwrap().
func WithSource[T any](src error) Option[T] {
	return func(c *Cause[T]) { c.src = src }
}

// E is a minimal builder when you don’t want to chain Msg/Src calls.
// With no options it is equivalent to New.
func E[T any](kind T, opts ...Option[T]) *Cause[T] {
	c := New(kind)
	for _, o := range opts {
		o(c)
	}

	return c
}

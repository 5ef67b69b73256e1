package cause

import (
	"path/filepath"
	"runtime"
)

// Here creates a Cause like New does and, when the module is built with the
// causedebug tag, additionally records the caller's file name and line
// number. Without the tag it is behaviorally identical to New.
func Here[T any](kind T) *Cause[T] {
	c := New(kind)
	if locationEnabled {
		c.file, c.line = callerLocation(2)
	}

	return c
}

// HereMsg is Here with an initial message, equivalent to chaining Msg
// immediately.
func HereMsg[T any](kind T, msg string) *Cause[T] {
	c := New(kind).Msg(msg)
	if locationEnabled {
		c.file, c.line = callerLocation(2)
	}

	return c
}

// callerLocation resolves the call site skip frames up the stack.
// The file is reduced to its base name so rendered output does not depend
// on the checkout path of the build.
func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}

	return filepath.Base(file), line
}

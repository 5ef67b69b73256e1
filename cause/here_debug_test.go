//go:build causedebug

package cause_test

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-cause/cause"
)

// caller returns this file's base name and the line of its own call site,
// for building expected location suffixes.
func caller() (string, int) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return "unknown", 0
	}

	return filepath.Base(file), line
}

func TestHere_RecordsCallSite(t *testing.T) {
	t.Parallel()

	file, line := caller()
	c := cause.Here(notFoundError) // recorded line is line+1

	want := fmt.Sprintf("NotFoundError [%s:%d]", file, line+1)
	require.Equal(t, want, c.Error())

	gotFile, gotLine, ok := c.Location()
	require.True(t, ok)
	require.Equal(t, file, gotFile)
	require.Equal(t, line+1, gotLine)
}

func TestHereMsg_RecordsCallSite(t *testing.T) {
	t.Parallel()

	file, line := caller()
	c := cause.HereMsg(notFoundError, "there is no such content") // recorded line is line+1

	want := fmt.Sprintf("NotFoundError: there is no such content [%s:%d]", file, line+1)
	require.Equal(t, want, c.Error())
}

// The location suffix stays attached to the head even when a source is
// present, ahead of the Caused by block.
func TestHere_SuffixPrecedesCausedBy(t *testing.T) {
	t.Parallel()

	file, line := caller()
	c := cause.Here(internalError).Src(cause.New(notFoundError)) // recorded line is line+1

	want := fmt.Sprintf("InternalError [%s:%d]\n\nCaused by:\n    NotFoundError\n", file, line+1)
	require.Equal(t, want, c.Error())
}

// Plain constructors never record location, tag or no tag.
func TestNew_NeverRecordsCallSite(t *testing.T) {
	t.Parallel()

	for _, c := range []*cause.Cause[errKind]{
		cause.New(internalError),
		cause.E(internalError),
		cause.Wrap(internalError, nil),
	} {
		_, _, ok := c.Location()
		require.False(t, ok)
	}
}

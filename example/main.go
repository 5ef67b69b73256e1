// Package main demonstrates usage of the scg-cause package.
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/next-trace/scg-cause/cause"
)

type errKind int

const (
	invalidArgumentsError errKind = iota
	internalError
	notFoundError
)

func (k errKind) String() string {
	switch k {
	case invalidArgumentsError:
		return "InvalidArgumentsError"
	case internalError:
		return "InternalError"
	case notFoundError:
		return "NotFoundError"
	default:
		return "UnknownError"
	}
}

func httpStatus(k errKind) int {
	switch k {
	case invalidArgumentsError:
		return http.StatusBadRequest
	case notFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func main() {
	// Direct construction; the kind drives transport mapping.
	e := cause.New(notFoundError).Msg("customer 42 not found")
	fmt.Println(e, "->", httpStatus(e.Kind()))

	// Chain an underlying cause; errors.Is still sees it through Unwrap.
	rowErr := errors.New("row not found")
	err := cause.New(internalError).Msg("lookup failed").Src(rowErr)
	fmt.Println(err)
	fmt.Println("is rowErr:", errors.Is(err, rowErr))

	// Call-site capture; the [file:line] suffix appears only when built
	// with -tags causedebug.
	fmt.Println(cause.Here(invalidArgumentsError))
	fmt.Println(cause.HereMsg(notFoundError, "there is no such content"))

	// Adapting arbitrary errors at a boundary.
	fmt.Println(cause.Ensure(internalError, rowErr))
}

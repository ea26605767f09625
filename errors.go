package nbt

import (
	"errors"
	"strconv"
	"strings"
)

// Errors
var (
	ErrNegativeDepth   = errors.New("nbt: negative depth budget")
	ErrMaxDepthReached = errors.New("nbt: maximum nesting depth reached")

	ErrTooLarge = errors.New("nbt: decompressed document too large")
)

// UnknownTagTypeError is returned for a type id outside 0..12.
type UnknownTagTypeError struct{ ID byte }

func (e *UnknownTagTypeError) Error() string {
	return "nbt: unknown tag type " + strconv.Itoa(int(e.ID))
}

// ReadError is returned when the stream ends early or holds a value that
// cannot be read.
type ReadError struct {
	Msg string
	Err error
}

func (e *ReadError) Error() string {
	if e.Err == nil {
		return "nbt: read error: " + e.Msg
	}
	return "nbt: read error: " + e.Msg + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// UnknownError wraps a failure from outside the tag reader, such as a
// broken compressed stream.
type UnknownError struct{ Err error }

func (e *UnknownError) Error() string { return "nbt: " + e.Err.Error() }

func (e *UnknownError) Unwrap() error { return e.Err }

// MultiError collects the per-entry failures of one compound.
type MultiError []error

func (m MultiError) Error() string {
	var b strings.Builder
	b.WriteString("nbt: ")
	b.WriteString(strconv.Itoa(len(m)))
	b.WriteString(" compound entries failed: ")
	for i, err := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (m MultiError) Unwrap() []error { return m }

// internal constants used for ReadError
var (
	errTruncated     = "unexpected end of stream"
	errEmptyCompound = "compound ended without entries or terminator"
	errEndList       = "list of TAG_End with non-zero length"
	errBadString     = "bad string encoding"
)

func readErr(msg string, err error) error { return &ReadError{Msg: msg, Err: err} }

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is classification of *Error values.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrIO             = errors.New("i/o failure")
)

// Kind is the coarse category of a conversion failure.
type Kind string

const (
	KindMalformedInput Kind = "malformed_input"
	KindIO             Kind = "io"
)

// Error wraps a failure with the operation and the location it refers to.
type Error struct {
	Op     string
	Kind   Kind
	Path   string // input file, output directory or output file
	Line   int    // CSV line, 0 when not tied to a row
	Family string // family id, empty when not tied to a family
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Op, e.Kind)
	var loc []string
	if e.Path != "" {
		loc = append(loc, "path="+e.Path)
	}
	if e.Line > 0 {
		loc = append(loc, fmt.Sprintf("line=%d", e.Line))
	}
	if e.Family != "" {
		loc = append(loc, "family="+e.Family)
	}
	if len(loc) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(loc, " "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches ErrMalformedInput and ErrIO by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMalformedInput:
		return e.Kind == KindMalformedInput
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func malformed(op, path string, err error) *Error {
	return &Error{Op: op, Kind: KindMalformedInput, Path: path, Err: err}
}

func ioFailure(op, path string, err error) *Error {
	return &Error{Op: op, Kind: KindIO, Path: path, Err: err}
}

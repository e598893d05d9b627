// Package crserr defines the structured error kind shared by every package
// in this module, in place of ad-hoc errors.New calls.
package crserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the closed set of error categories a core operation can
// fail with.
type ErrorKind int

const (
	// InvalidValueType means a property map entry has the wrong kind.
	InvalidValueType ErrorKind = iota
	// InvalidUnit means a unit reference could not be resolved.
	InvalidUnit
	// InvalidUnitKind means an operation mixed units of incompatible kinds.
	InvalidUnitKind
	// InvariantViolation means a data-model invariant was violated during
	// construction (e.g. both datum and datum ensemble set).
	InvariantViolation
	// ParsingError means malformed WKT or PROJ input.
	ParsingError
	// UnknownKeyword means a WKT keyword outside the recognized set.
	UnknownKeyword
	// FormattingError means the requested dialect cannot represent the
	// object being emitted.
	FormattingError
	// UnsupportedOperation means the requested operation is not
	// implemented for the given inputs.
	UnsupportedOperation
	// NotFound means an authority lookup miss.
	NotFound
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidValueType:
		return "InvalidValueType"
	case InvalidUnit:
		return "InvalidUnit"
	case InvalidUnitKind:
		return "InvalidUnitKind"
	case InvariantViolation:
		return "InvariantViolation"
	case ParsingError:
		return "ParsingError"
	case UnknownKeyword:
		return "UnknownKeyword"
	case FormattingError:
		return "FormattingError"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every fallible core
// operation. Pos is meaningful only for ParsingError and is a byte offset
// into the original input; it is -1 when not applicable.
type Error struct {
	Kind    ErrorKind
	Msg     string
	Context string
	Pos     int
	cause   error
}

// New builds an Error with no wrapped cause.
func New(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Pos: -1}
}

// Newf builds an Error with a formatted message.
func Newf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: -1}
}

// AtPos attaches a byte offset to a ParsingError.
func (e *Error) AtPos(pos int) *Error {
	e.Pos = pos
	return e
}

// WithContext attaches a free-form context string, mirroring the
// "position and context string" contract of §7.
func (e *Error) WithContext(context string) *Error {
	e.Context = context
	return e
}

// Wrap wraps a lower-level error (typically from github.com/pkg/errors or
// the standard library) with a kind and message, using pkg/errors so the
// original stack trace is preserved.
func Wrap(cause error, kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Pos: -1, cause: errors.Wrap(cause, msg)}
}

func (e *Error) Error() string {
	s := e.Msg
	if e.Pos >= 0 {
		s = fmt.Sprintf("%s at offset %d", s, e.Pos)
	}
	if e.Context != "" {
		s = fmt.Sprintf("%s: %s", s, e.Context)
	}
	if e.cause != nil {
		s = fmt.Sprintf("%s: %s", s, e.cause.Error())
	}
	return s
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, crserr.New(crserr.NotFound, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

package crserr

import (
	"errors"
	"testing"
)

func TestErrorMessageComposition(t *testing.T) {
	e := New(ParsingError, "unexpected token").AtPos(12).WithContext(`GEOGCRS["X"`)
	want := `unexpected token at offset 12: GEOGCRS["X"`
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestNewDefaultsPosToNegativeOne(t *testing.T) {
	e := New(NotFound, "missing")
	if e.Error() != "missing" {
		t.Errorf("Error() = %q, want %q (no offset suffix)", e.Error(), "missing")
	}
}

func TestWrapPreservesCauseAndSupportsUnwrap(t *testing.T) {
	cause := errors.New("sql: no rows in result set")
	e := Wrap(cause, NotFound, "CRS lookup failed")
	if !errors.Is(e, cause) {
		t.Errorf("errors.Is(wrapped, cause) should hold through Unwrap")
	}
}

func TestIsComparesByKindOnly(t *testing.T) {
	a := New(InvariantViolation, "message one")
	b := New(InvariantViolation, "message two")
	c := New(NotFound, "message one")
	if !errors.Is(a, b) {
		t.Errorf("errors of the same Kind should satisfy errors.Is regardless of message")
	}
	if errors.Is(a, c) {
		t.Errorf("errors of different Kind should not satisfy errors.Is")
	}
}

func TestErrorKindString(t *testing.T) {
	if InvariantViolation.String() != "InvariantViolation" {
		t.Errorf("String() = %q, want InvariantViolation", InvariantViolation.String())
	}
	if ErrorKind(999).String() != "Unknown" {
		t.Errorf("unrecognized kind should stringify to Unknown")
	}
}

package id3

import (
	"errors"
	"testing"
)

func TestFormatErrorMessage(t *testing.T) {
	err := newFormatError(MalformedSize, "content size exceeds file length")
	want := "malformed size: content size exceeds file length"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestFormatErrorMessageWithoutDetail(t *testing.T) {
	err := newFormatError(UnsupportedVersion, "")
	if err.Error() != "unsupported version" {
		t.Errorf("got %q", err.Error())
	}
}

func TestIoErrorUnwrap(t *testing.T) {
	err := newIoError("read_slice", ErrUnexpectedEOF)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Error("expected errors.Is to find ErrUnexpectedEOF through IoError")
	}
}

func TestIoErrorMessageMentionsOp(t *testing.T) {
	err := newIoError("write_at", ErrOutOfRange)
	if err.Error() == "" {
		t.Fatal("expected a non-empty message")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("expected errors.Is to find ErrOutOfRange through IoError")
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	err := newArgumentError("mode", "unknown OpenMode")
	want := "invalid argument mode: unknown OpenMode"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestArgumentErrorUnwrapsToNilWithoutACause(t *testing.T) {
	err := newArgumentError("mode", "unknown OpenMode")
	if err.Unwrap() != nil {
		t.Errorf("expected a nil cause, got %v", err.Unwrap())
	}
}

func TestArgumentErrorUnwrapsWrappedCause(t *testing.T) {
	err := &ArgumentError{Arg: "payload", Detail: "not valid UTF-16", cause: ErrUnexpectedEOF}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Error("expected errors.Is to find the wrapped cause through ArgumentError")
	}
}

func TestStateErrorMessage(t *testing.T) {
	err := newStateError("tag has no associated path; use WriteTo")
	want := "invalid state: tag has no associated path; use WriteTo"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestStateErrorUnwrapsWrappedCause(t *testing.T) {
	err := &StateError{Detail: "could not reopen source", cause: ErrOutOfRange}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("expected errors.Is to find the wrapped cause through StateError")
	}
}

func TestFormatErrorKindStringUnknown(t *testing.T) {
	var k FormatErrorKind = 999
	if k.String() != "unknown format error" {
		t.Errorf("got %q", k.String())
	}
}

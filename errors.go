package id3

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatErrorKind distinguishes the different ways a tag or frame can be
// malformed. It does not attempt to be a full taxonomy of every byte
// arrangement that could go wrong, only the ones this package actively
// detects.
type FormatErrorKind int

const (
	UnsupportedVersion FormatErrorKind = iota
	UnsupportedFeature
	UnknownEncodingByte
	UnterminatedString
	MalformedSize
)

func (k FormatErrorKind) String() string {
	switch k {
	case UnsupportedVersion:
		return "unsupported version"
	case UnsupportedFeature:
		return "unsupported feature"
	case UnknownEncodingByte:
		return "unknown encoding byte"
	case UnterminatedString:
		return "unterminated string"
	case MalformedSize:
		return "malformed size"
	default:
		return "unknown format error"
	}
}

// FormatError reports malformed header/frame structure: an unsupported
// version, an unsupported feature (extended header), an unknown encoding
// byte, a string missing its null terminator, or a nonsensical size.
type FormatError struct {
	Kind   FormatErrorKind
	Detail string
	cause  error
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *FormatError) Unwrap() error { return e.cause }

func newFormatError(kind FormatErrorKind, detail string) *FormatError {
	return &FormatError{Kind: kind, Detail: detail}
}

// IoError reports an underlying open/read/write failure, including a short
// read where an exact byte count was required.
type IoError struct {
	Op    string
	cause error
}

func (e *IoError) Error() string {
	return errors.Wrap(e.cause, e.Op).Error()
}

func (e *IoError) Unwrap() error { return e.cause }

func newIoError(op string, cause error) *IoError {
	return &IoError{Op: op, cause: cause}
}

// ErrUnexpectedEOF is the cause wrapped by an IoError produced by a short
// positional read.
var ErrUnexpectedEOF = errors.New("unexpected EOF")

// ErrOutOfRange is the cause wrapped by an IoError produced by a write that
// would run past the end of a fixed-size in-memory buffer.
var ErrOutOfRange = errors.New("write out of range")

// ArgumentError reports a caller-supplied value that cannot be used for the
// operation: a payload of the wrong shape for a codec, or a destination that
// makes no sense for the requested sink operation.
type ArgumentError struct {
	Arg    string
	Detail string
	cause  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Detail)
}

func (e *ArgumentError) Unwrap() error { return e.cause }

func newArgumentError(arg, detail string) *ArgumentError {
	return &ArgumentError{Arg: arg, Detail: detail}
}

// StateError reports that an operation cannot proceed given the current
// state of the TagData, such as calling Save on a tag that has no bound
// source file.
type StateError struct {
	Detail string
	cause  error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Detail)
}

func (e *StateError) Unwrap() error { return e.cause }

func newStateError(detail string) *StateError {
	return &StateError{Detail: detail}
}

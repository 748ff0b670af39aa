package netpbm

import (
	"errors"
	"fmt"
)

// Kind classifies a decoding failure.
type Kind int

const (
	UnreadableInput Kind = iota + 1
	UnrecognizedFormat
	MissingField
	InvalidNumeric
)

func (k Kind) String() string {
	switch k {
	case UnreadableInput:
		return "unreadable input"
	case UnrecognizedFormat:
		return "unrecognized format"
	case MissingField:
		return "missing field"
	case InvalidNumeric:
		return "invalid numeric value"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for use with errors.Is, one per Kind.
var (
	ErrUnreadableInput    = errors.New("netpbm: unreadable input")
	ErrUnrecognizedFormat = errors.New("netpbm: unrecognized format")
	ErrMissingField       = errors.New("netpbm: missing field")
	ErrInvalidNumeric     = errors.New("netpbm: invalid numeric value")
)

func (k Kind) sentinel() error {
	switch k {
	case UnreadableInput:
		return ErrUnreadableInput
	case UnrecognizedFormat:
		return ErrUnrecognizedFormat
	case MissingField:
		return ErrMissingField
	case InvalidNumeric:
		return ErrInvalidNumeric
	}
	return nil
}

// Error is returned for every failure to decode a file. Field names the
// header field or "sample" where applicable, Value holds the offending
// token and Err the underlying cause, if any.
type Error struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

func (e *Error) Error() string {
	s := "netpbm: " + e.Kind.String()
	if e.Field != "" {
		s += " " + e.Field
	}
	if e.Value != "" {
		s += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel corresponding to the error's Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the Kind of the first *Error in err's chain, or zero if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func unreadable(field string, err error) error {
	return &Error{Kind: UnreadableInput, Field: field, Err: err}
}

func missing(field string) error {
	return &Error{Kind: MissingField, Field: field}
}

func invalid(field, value string, err error) error {
	return &Error{Kind: InvalidNumeric, Field: field, Value: value, Err: err}
}

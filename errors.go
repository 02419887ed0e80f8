// Copyright 2025 Jonathan Amsterdam.

package argspec

import (
	"fmt"
)

// Error types for spec compilation and argument scanning.

// ErrorKind identifies the category of a parse failure.
type ErrorKind int

const (
	// Structural is a malformed specification: a bad declaration string,
	// an unknown type token, or a sequence that does not alternate
	// declarations and defaults. Reported via SpecError.
	Structural ErrorKind = iota

	// UnknownArgument is an option token that matches no declared name.
	UnknownArgument

	// MissingValue is a non-flag option supplied without "=value".
	MissingValue

	// InvalidNumber is a num value with characters outside digits,
	// commas and underscores.
	InvalidNumber

	// InvalidYesNo is a yesno value that is not one of y, yes, 1, n, no, 0.
	InvalidYesNo

	// NotFound is a path value whose probed path does not exist.
	NotFound

	// WrongKind is a path value whose probed path exists but is a file
	// where a directory was required, or vice versa.
	WrongKind

	// InvalidChoice is a list value outside the declared allowed set.
	InvalidChoice
)

var kindNames = map[ErrorKind]string{
	Structural:      "invalid spec",
	UnknownArgument: "unknown argument",
	MissingValue:    "missing value",
	InvalidNumber:   "invalid number",
	InvalidYesNo:    "invalid yes/no value",
	NotFound:        "not found",
	WrongKind:       "wrong file type",
	InvalidChoice:   "invalid choice",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// A ParseError is an error in the supplied command-line tokens.
// Option is the name as it appeared on the command line and Value the
// raw value part, when one was involved.
type ParseError struct {
	Kind   ErrorKind
	Option string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	} else if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	if e.Option != "" {
		return fmt.Sprintf("%s: %s", e.Option, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A SpecError is an error in the specification itself, detected at
// compile time before any token is scanned. Err may hold several
// declaration errors joined together.
type SpecError struct {
	Err error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid spec: %v", e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// Kind returns Structural; every SpecError is a structural failure.
func (e *SpecError) Kind() ErrorKind {
	return Structural
}

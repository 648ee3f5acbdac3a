// Package errors provides structured errors for the configuration surface
// of the library. The animation path itself never returns errors: every
// failure there falls open to a non-animated property change.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an unreadable or unusable preset file.
	KindConfig
	// KindParsing indicates malformed preset content.
	KindParsing
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	default:
		return "unknown"
	}
}

// Error represents a structured error.
type Error struct {
	// Op is the operation that failed (e.g., "preset.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error.
func E(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

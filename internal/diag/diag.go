// Package diag provides the error taxonomy and warning collection used
// across every pipeline stage: a single typed error with a stable Kind,
// plus a non-fatal warning channel surfaced on stderr rather than
// aborting the run.
package diag

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind identifies one class of pipeline failure. Stable across versions so
// callers can switch on it with errors.As.
type Kind string

const (
	// KindMalformedIDL means the JSON did not parse, or neither dialect
	// fingerprint matched.
	KindMalformedIDL Kind = "MALFORMED_IDL"
	// KindInvalidProgramAddress means a caller-supplied or IDL-supplied
	// address is not a valid 32-byte base58 key.
	KindInvalidProgramAddress Kind = "INVALID_PROGRAM_ADDRESS"
	// KindUnresolvedName means a DefinedByName(n) has no matching typedef
	// or account in the IDL.
	KindUnresolvedName Kind = "UNRESOLVED_NAME"
	// KindIoFailure means reading the input or writing an output file failed.
	KindIoFailure Kind = "IO_FAILURE"
	// KindEmissionFailure means an internal invariant was violated while
	// lowering the model to Rust source; this is a bug in the generator.
	KindEmissionFailure Kind = "EMISSION_FAILURE"
)

// Error is the single error type every pipeline stage returns. It carries a
// stable Kind for programmatic handling, a human message, an optional
// wrapped cause, and free-form structured Details.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// WithCause attaches a wrapped error and returns e for chaining.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails attaches structured context and returns e for chaining.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// New constructs an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf constructs an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// MalformedIDL builds a KindMalformedIDL error.
func MalformedIDL(reason string) *Error { return New(KindMalformedIDL, reason) }

// InvalidProgramAddress builds a KindInvalidProgramAddress error.
func InvalidProgramAddress(address string, cause error) *Error {
	return Newf(KindInvalidProgramAddress, "invalid program address %q", address).WithCause(cause)
}

// UnresolvedName builds a KindUnresolvedName error.
func UnresolvedName(name string) *Error {
	return Newf(KindUnresolvedName, "defined type %q is not declared as a typedef or account", name)
}

// IoFailure builds a KindIoFailure error.
func IoFailure(what string, cause error) *Error {
	return Newf(KindIoFailure, "%s", what).WithCause(cause)
}

// EmissionFailure builds a KindEmissionFailure error.
func EmissionFailure(what string) *Error {
	return Newf(KindEmissionFailure, "internal invariant violated: %s", what)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain assignable to target.
func As(err error, target any) bool { return errors.As(err, target) }

// Warning is a non-fatal diagnostic: the run proceeds, but the caller
// should be told. Duplicate accounts, a missing IDL address, and ignored
// IDL fields are warning-worthy, never failure-worthy.
type Warning struct {
	Message string
	Details map[string]any
}

func (w Warning) String() string { return w.Message }

// Logger collects warnings and forwards them to an slog.Logger, letting
// every stage share one logger without importing a global. Construct with
// NewLogger.
type Logger struct {
	slog     *slog.Logger
	warnings []Warning
}

// NewLogger creates a Logger. A nil slog.Logger falls back to slog.Default().
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{slog: logger}
}

// Warn records a warning and logs it immediately at slog.LevelWarn.
func (l *Logger) Warn(message string, details map[string]any) {
	w := Warning{Message: message, Details: details}
	l.warnings = append(l.warnings, w)
	args := make([]any, 0, len(details)*2)
	for k, v := range details {
		args = append(args, k, v)
	}
	l.slog.Warn(message, args...)
}

// Warnings returns every warning recorded so far, in emission order.
func (l *Logger) Warnings() []Warning {
	return append([]Warning(nil), l.warnings...)
}

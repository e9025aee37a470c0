package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration parsing and loading.
var (
	// ErrBadToken indicates a value token failed strict parsing.
	ErrBadToken = errors.New("invalid value")

	// ErrUnknownBackend indicates a backend name outside the known set.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrKernelDescriptor indicates a malformed blur kernel descriptor.
	ErrKernelDescriptor = errors.New("invalid blur kernel descriptor")

	// ErrStrengthRange indicates a blur strength level outside [1, 20].
	ErrStrengthRange = errors.New("blur strength out of range")

	// ErrUnknownWindowType indicates a wintype section name outside the
	// known window types.
	ErrUnknownWindowType = errors.New("unknown window type")
)

// FatalError is a configuration problem that aborts the whole load.
// Partially-applied global state is unsafe to render with, so a malformed
// value for a known field discards the in-progress build and leaves the
// previously active configuration intact.
type FatalError struct {
	// Field is the configuration field being parsed.
	Field string

	// Token is the offending value text.
	Token string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("config field %q: %v (value %q)", e.Field, e.Err, e.Token)
	}
	return fmt.Sprintf("config field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(field, token string, err error) *FatalError {
	return &FatalError{Field: field, Token: token, Err: err}
}

// Warning is a non-fatal configuration problem. The load continues, skipping
// only the offending entry; warnings are aggregated on the LoadReport so the
// caller can surface them through its diagnostics sink.
type Warning struct {
	// Field is the configuration field the warning concerns.
	Field string

	// Token is the offending value text, if any.
	Token string

	// Message describes the problem and any substituted fallback.
	Message string

	// Err is the underlying sentinel, if any.
	Err error
}

// Unwrap returns the underlying error.
func (w *Warning) Unwrap() error {
	return w.Err
}

// Error implements the error interface.
func (w *Warning) Error() string {
	if w.Field != "" {
		return fmt.Sprintf("%s: %s", w.Field, w.Message)
	}
	return w.Message
}

// IsWarning reports whether err is, or wraps, a Warning.
func IsWarning(err error) bool {
	var w *Warning
	return errors.As(err, &w)
}

func warnf(field, token, format string, args ...any) *Warning {
	return &Warning{Field: field, Token: token, Message: fmt.Sprintf(format, args...)}
}

// LoadReport aggregates the non-fatal problems encountered during one
// configuration load.
type LoadReport struct {
	// Warnings holds skipped rules, deprecated spellings, and substituted
	// fallbacks, in the order they were encountered.
	Warnings []*Warning
}

func (r *LoadReport) warn(w *Warning) {
	r.Warnings = append(r.Warnings, w)
}

func (r *LoadReport) warnErr(field string, err error) {
	var w *Warning
	if errors.As(err, &w) {
		r.Warnings = append(r.Warnings, w)
		return
	}
	r.Warnings = append(r.Warnings, &Warning{Field: field, Message: err.Error()})
}

// HasWarnings reports whether any warnings were recorded.
func (r *LoadReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}

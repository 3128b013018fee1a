package patch

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Install errors. None of these change patch state.
	CodeInvalidTarget     Code = "INVALID_TARGET"
	CodeAlreadyPatched    Code = "ALREADY_PATCHED"
	CodeIndexOutOfRange   Code = "INDEX_OUT_OF_RANGE"
	CodeTypeCoercion      Code = "TYPE_COERCION_FAILURE"
	CodeSerialization     Code = "SERIALIZATION_FAILURE"
	CodeMalformedDocument Code = "MALFORMED_DOCUMENT"
	CodePartialApply      Code = "PARTIAL_APPLY_FAILURE"
)

// Error is a coded patching error.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable detail
	Metadata map[string]string // Additional context, e.g. key or counts
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...) + ": " + cause.Error(), Cause: cause}
}

func (e *Error) with(key, value string) *Error {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// GetCode returns the code of the first *Error in err's chain, or
// CodeUnknown.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

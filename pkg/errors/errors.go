// Package errors provides structured error types for the polyparser codecs.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the codec packages
//   - Machine-readable error codes for programmatic handling
//   - Decode errors that carry the byte offset at which they occurred
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: malformed input (bad lengths, bad discriminants)
//   - SCHEMA_MISMATCH: a tagged entry did not match the expected field
//   - RANGE: a decoded value fell outside its sanity envelope
//   - UNSUPPORTED_*: formats or directions the converter does not handle
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLength, "byte array length %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidLength) {
//	    // Handle malformed input
//	}
//
//	// Attach the cursor position of a decode failure
//	err := errors.At(errors.ErrCodeSchemaMismatch, off, "expected %q, got %q", want, got)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Malformed input
	ErrCodeInvalidLength  Code = "INVALID_LENGTH"
	ErrCodeInvalidEntry   Code = "INVALID_ENTRY"
	ErrCodeInvalidJSON    Code = "INVALID_JSON"
	ErrCodeTruncated      Code = "TRUNCATED"
	ErrCodeSchemaMismatch Code = "SCHEMA_MISMATCH"

	// Sanity envelope violations
	ErrCodeRange Code = "RANGE"

	// Unsupported formats or directions
	ErrCodeUnsupportedFormat  Code = "UNSUPPORTED_FORMAT"
	ErrCodeUnsupportedVersion Code = "UNSUPPORTED_VERSION"

	// Filesystem errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, an optional byte offset into the
// stream being decoded, and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Offset  int64  // Byte offset of the failure, -1 when not applicable
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (at byte %d)", msg, e.Offset)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  -1,
	}
}

// At creates a new Error annotated with the byte offset at which decoding
// failed.
func At(code Code, offset int64, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  -1,
		Cause:   cause,
	}
}

// WrapAt creates a new Error wrapping an existing error, annotated with the
// byte offset at which decoding failed.
func WrapAt(code Code, cause error, offset int64, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Cause:   cause,
	}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// CodeOf returns the code of the outermost structured error in err's chain,
// or ErrCodeInternal if err is not a structured error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// OffsetOf returns the byte offset recorded on the outermost structured error
// in err's chain, or -1 if none was recorded.
func OffsetOf(err error) int64 {
	var e *Error
	if errors.As(err, &e) {
		return e.Offset
	}
	return -1
}

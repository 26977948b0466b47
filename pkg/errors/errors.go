// Package errors provides the unified error type and factory functions for
// ner-spotlight. Every layer (core merge logic, inference client, HTTP
// interface, CLI) uses AppError as the single carrier for structured error
// information, enabling consistent HTTP responses and logging.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the single structured error type used throughout the service.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently
// across all layers.
//
// Usage:
//
//	return errors.New(errors.CodeDecode, "response is not a token list")
//	return errors.Wrap(err, errors.CodeTransport, "inference request failed")
//	return errors.MalformedToken(3, "missing score field")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description, suitable for
	// inclusion in API responses returned to callers.
	Message string

	// Detail carries supplementary context (token index, HTTP status, span
	// offsets) that aids debugging without leaking internals to end users.
	Detail string

	// Cause is the underlying error, enabling errors.Is / errors.As
	// traversal of the full chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>", detail omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a shallow copy of the receiver with Cause set to err.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs a fresh AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError that wraps an existing error. If err is nil,
// Wrap returns nil so it can be used inline. When err is already an
// *AppError and code is CodeUnknown, the original code is preserved so that
// cross-layer propagation does not lose the domain classification.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// As re-exports the standard library's errors.As so callers need only one
// errors import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is re-exports the standard library's errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsCode reports whether any error in err's chain is an *AppError with the
// given code. It is the idiomatic way to check domain failure modes:
//
//	if errors.IsCode(err, errors.CodeMalformedToken) { ... }
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain.
// Returns CodeOK for nil and CodeUnknown when no AppError is present. Useful
// in middleware and metric layers that need a single code label.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// Convenience factories for the pipeline's failure taxonomy. Each call site
// reads naturally:
//
//	return errors.Transport("inference endpoint unreachable").WithCause(err)
//	return errors.Overlap(prev.End, cur.Start)

// Transport constructs a CodeTransport AppError.
func Transport(message string) *AppError {
	return &AppError{Code: CodeTransport, Message: message}
}

// Decode constructs a CodeDecode AppError.
func Decode(message string) *AppError {
	return &AppError{Code: CodeDecode, Message: message}
}

// MalformedToken constructs a CodeMalformedToken AppError referencing the
// offending token's position in the prediction list.
func MalformedToken(index int, reason string) *AppError {
	return &AppError{
		Code:    CodeMalformedToken,
		Message: fmt.Sprintf("malformed token at index %d", index),
		Detail:  reason,
	}
}

// Overlap constructs a CodeSpanOverlap AppError for two colliding spans.
func Overlap(prevEnd, curStart int) *AppError {
	return &AppError{
		Code:    CodeSpanOverlap,
		Message: "entity spans overlap",
		Detail:  fmt.Sprintf("previous span ends at %d, next starts at %d", prevEnd, curStart),
	}
}

// OutOfRange constructs a CodeSpanOutOfRange AppError for a span extending
// beyond the input text.
func OutOfRange(end, textLen int) *AppError {
	return &AppError{
		Code:    CodeSpanOutOfRange,
		Message: "entity span out of range",
		Detail:  fmt.Sprintf("span ends at %d, text length is %d", end, textLen),
	}
}

// InvalidParam constructs a CodeInvalidParam AppError.
func InvalidParam(message string) *AppError {
	return &AppError{Code: CodeInvalidParam, Message: message}
}

// InvalidConfig constructs a CodeInvalidConfig AppError.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: CodeInvalidConfig, Message: message}
}

// Internal constructs a CodeInternal AppError. Use for unexpected failures
// where no more specific code applies.
func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message}
}

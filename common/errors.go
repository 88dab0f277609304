// Package common provides shared utilities for the storefront services:
// command errors and validation, gRPC plumbing, identities, and the
// event log primitives the aggregates are built on.
package common

import "fmt"

// StatusCode represents the category of a command rejection.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
	StatusNotFound
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	case StatusNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// FieldViolation names a single invalid input field.
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// CommandError is returned when a request is rejected by storefront logic.
type CommandError struct {
	Code       StatusCode
	Message    string
	Violations []FieldViolation
}

func (e *CommandError) Error() string {
	return e.Message
}

// NewInvalidArgument creates a CommandError for invalid input.
func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf creates an INVALID_ARGUMENT error with a formatted message.
func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewFailedPrecondition creates a CommandError for violated preconditions.
func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

// NewFailedPreconditionf creates a CommandError with a formatted message.
func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a CommandError for a missing entity.
func NewNotFound(message string) *CommandError {
	return &CommandError{Code: StatusNotFound, Message: message}
}

// NewValidationError creates an INVALID_ARGUMENT error carrying per-field violations.
func NewValidationError(message string, violations []FieldViolation) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message, Violations: violations}
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation failure reasons used across the domain layer.
const (
	ReasonRequired      = "required"
	ReasonInvalidFormat = "invalid_format"
	ReasonTooLong       = "too_long"
	ReasonNameRequired  = "name_required"
	ReasonNameTooLong   = "name_too_long"
	ReasonEmailTaken    = "email_taken"
)

// ValidationError represents a client-input problem (malformed email,
// blank or oversized name). It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a new validation error.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// HTTPStatus returns the HTTP status code for this error.
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// ConflictError represents a uniqueness violation detected either by the
// domain service check or by the storage-level unique constraint.
type ConflictError struct {
	Reason string
}

// NewConflictError creates a new conflict error.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Reason)
}

// HTTPStatus returns the HTTP status code for this error.
func (e *ConflictError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents an id or email lookup miss at the application
// boundary. Repository misses themselves are absent-value results, not errors.
type NotFoundError struct {
	Resource string
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error.
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// InfrastructureError represents a storage or connectivity failure.
type InfrastructureError struct {
	Message string
	Err     error
}

// NewInfrastructureError creates a new infrastructure error wrapping the cause.
func NewInfrastructureError(message string, err error) *InfrastructureError {
	return &InfrastructureError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error.
func (e *InfrastructureError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser is implemented by errors that map to an HTTP status code.
type HTTPStatuser interface {
	HTTPStatus() int
}

// HTTPStatusOf resolves the HTTP status code for an error, defaulting to 500
// for untyped failures.
func HTTPStatusOf(err error) int {
	var st HTTPStatuser
	if errors.As(err, &st) {
		return st.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

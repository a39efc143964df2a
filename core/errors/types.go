// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for search failures and formatting defects

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// SearchUnavailableError is returned when the search service cannot be
// reached or answers with a non-2xx status
type SearchUnavailableError struct {
	// URL is the request that failed
	URL string

	// StatusCode is the HTTP status, 0 for transport failures
	StatusCode int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *SearchUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search service unavailable: %s returned %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("search service unavailable: %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *SearchUnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is returned when the search service answers with a
// payload that does not match the expected envelope
type MalformedResponseError struct {
	URL    string
	Body   string
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed search response from %s: %s: %v", e.URL, e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed search response from %s: %s", e.URL, e.Reason)
}

// Unwrap returns the underlying cause
func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// InvalidTimestampError is returned when a publish date cannot be parsed
type InvalidTimestampError struct {
	Value string
}

// Error implements the error interface
func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %q", e.Value)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSearchUnavailable checks if an error is a SearchUnavailableError
func IsSearchUnavailable(err error) bool {
	var unavailableErr *SearchUnavailableError
	return errors.As(err, &unavailableErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}

// IsInvalidTimestamp checks if an error is an InvalidTimestampError
func IsInvalidTimestamp(err error) bool {
	var timestampErr *InvalidTimestampError
	return errors.As(err, &timestampErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

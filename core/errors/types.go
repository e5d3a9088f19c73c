// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for classification, logging and API responses

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

// ExternalAPIError represents a non-success HTTP status from an external resource
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// RemoteCallError is an application-level error returned by the remote procedure layer.
// Transport failures never surface as RemoteCallError; the transport guard absorbs them.
type RemoteCallError struct {
	// Procedure is the remote procedure path, e.g. "news.latest"
	Procedure string

	// Message is the error message exactly as sent by the backend
	Message string

	// Code is the backend error code name, e.g. "UNAUTHORIZED"
	Code string

	// HTTPStatus is the status the backend associated with the error
	HTTPStatus int
}

// Error returns the backend message unchanged so it can be compared with sentinels
func (e *RemoteCallError) Error() string {
	return e.Message
}

// SnapshotError represents a static fallback resource that could not be used
type SnapshotError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s unavailable: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *SnapshotError) Unwrap() error {
	return e.Err
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

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsRemoteCall checks if an error originates from the remote procedure layer
func IsRemoteCall(err error) bool {
	var rcErr *RemoteCallError
	return errors.As(err, &rcErr)
}

// IsSnapshot checks if an error is a SnapshotError
func IsSnapshot(err error) bool {
	var snapErr *SnapshotError
	return errors.As(err, &snapErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

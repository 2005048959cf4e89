package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code
type ErrorCode string

const (
	// Not-found errors (404-class)
	ErrorCodeProductNotFound ErrorCode = "PRODUCT_NOT_FOUND"
	ErrorCodePageNotFound    ErrorCode = "PAGE_NOT_FOUND"

	// Validation errors - recovered locally with an inline field message,
	// never surfaced as an HTTP error status
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Upstream and internal errors (500-class)
	ErrorCodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
	ErrorCodeSessionInvalid  ErrorCode = "SESSION_INVALID"
	ErrorCodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a structured error with an error code and context
type DomainError struct {
	Err     error
	Details map[string]interface{}
	Code    ErrorCode
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail field to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with a domain error code
func WrapError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// GetErrorCode extracts the error code from an error, returns empty string
// if the error is not a DomainError
func GetErrorCode(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsNotFoundError checks if an error represents a "not found" condition
func IsNotFoundError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrorCodeProductNotFound || code == ErrorCodePageNotFound
}

// IsUpstreamError checks if an error came from the products API boundary
func IsUpstreamError(err error) bool {
	return GetErrorCode(err) == ErrorCodeUpstreamFailure
}

// Structural misuse errors raised by page controllers. The messages are
// diagnostics for the logs and the error boundary, not payer-facing copy.
var (
	ErrReferencePageDisabled = NewDomainError(ErrorCodePageNotFound,
		"Attempted to access reference page with a product that auto-generates references.")

	ErrAmountPageFixedPrice = NewDomainError(ErrorCodePageNotFound,
		"Attempted to access amount page with a product that already has a price.")

	ErrProductNotFound = NewDomainError(ErrorCodeProductNotFound, "product not found")

	ErrInternalError = NewDomainError(ErrorCodeInternalError, "internal server error")
)

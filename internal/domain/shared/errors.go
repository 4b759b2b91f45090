package shared

import (
	"errors"
	"fmt"
)

// Error codes shared by every bounded context. The HTTP layer maps them to status codes.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeStore      = "STORE_ERROR"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Err is the underlying cause, set for store failures
	Err error `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, shared.ErrNotFound) matches any not-found error.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Message == "" && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports missing or malformed input
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError reports that the named entity does not exist
func NewNotFoundError(entity string) *DomainError {
	return NewDomainError(CodeNotFound, entity+" not found")
}

// NewConflictError reports a uniqueness or in-use violation
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewStoreError wraps a persistence failure with a human-readable message
func NewStoreError(message string, err error) *DomainError {
	return &DomainError{
		Code:    CodeStore,
		Message: message,
		Err:     err,
	}
}

// Sentinels for errors.Is checks. They carry no message so that they match
// every error of the same code.
var (
	ErrValidation = &DomainError{Code: CodeValidation}
	ErrNotFound   = &DomainError{Code: CodeNotFound}
	ErrConflict   = &DomainError{Code: CodeConflict}
	ErrStore      = &DomainError{Code: CodeStore}
)

// CodeOf returns the domain error code carried by err, or "" when err is not a DomainError
func CodeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

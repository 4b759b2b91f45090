package dto

import (
	"net/http"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// Error codes returned in the error envelope. The first four are the domain
// taxonomy; the rest are raised by the HTTP layer itself.
const (
	ErrCodeValidation = shared.CodeValidation
	ErrCodeNotFound   = shared.CodeNotFound
	ErrCodeConflict   = shared.CodeConflict
	ErrCodeStore      = shared.CodeStore

	// ErrCodeBadRequest is used for malformed path or query parameters
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body cannot be decoded
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeRouteNotFound is used for unknown routes
	ErrCodeRouteNotFound = "ROUTE_NOT_FOUND"
	// ErrCodeMethodNotAllowed is used when the path exists with another method
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	// ErrCodeServiceUnavailable is used by the health check when the database is down
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	// ErrCodeInternal is used for panics and unclassified errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeConflict:   http.StatusConflict,
	ErrCodeStore:      http.StatusInternalServerError,

	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInvalidJSON:        http.StatusBadRequest,
	ErrCodeRequestTooLarge:    http.StatusRequestEntityTooLarge,
	ErrCodeRouteNotFound:      http.StatusNotFound,
	ErrCodeMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

package models

import "fmt"

// ErrorCode is a string type for consistent error codes.
type ErrorCode string

// Predefined error codes for common API errors.
const (
	// Generic
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	ErrorCodeBadRequest          ErrorCode = "bad_request"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeUnauthorized        ErrorCode = "unauthorized"
	ErrorCodeMethodNotAllowed    ErrorCode = "method_not_allowed"

	// Validation
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeMissingParameter ErrorCode = "missing_parameter"
	ErrorCodeInvalidFormat    ErrorCode = "invalid_format"

	// Resource
	ErrorCodeDuplicateResource ErrorCode = "duplicate_resource"

	// Query pipeline. There is no code for an unknown intent: the
	// classifier always falls back to total_usage, so that branch is
	// unreachable by construction.
	ErrorCodeEmptyQuery     ErrorCode = "empty_query"
	ErrorCodeMissingDevice  ErrorCode = "missing_device"
	ErrorCodeDeviceNotFound ErrorCode = "device_not_found"
)

type APIError struct {
	Code       ErrorCode `json:"code"`              // Use the ErrorCode type
	Message    string    `json:"message"`           // Human-readable error message
	Details    any       `json:"details,omitempty"` // Optional: Additional details
	StatusCode int       `json:"-"`                 // HTTP status code
}

// Error makes APIError implement the error interface.
func (e APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAPIError is a constructor for APIError.
func NewAPIError(code ErrorCode, message string, details any, statusCode int) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
	}
}

// Package error defines domain-specific errors for the WalletWise application.
package error

import "errors"

// Assistant domain errors.
var (
	// ErrOracleUnavailable is returned when the completion service is
	// not configured with a credential.
	ErrOracleUnavailable = errors.New("completion service not configured")

	// ErrEmptyMessage is returned when the user message is blank.
	ErrEmptyMessage = errors.New("message must not be empty")
)

// AssistantErrorCode defines error codes for assistant errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssistantErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyMessage AssistantErrorCode = "AST-010001"

	// Oracle errors (02XXXX)
	ErrCodeOracleUnavailable AssistantErrorCode = "AST-020001"
	ErrCodeOracleFailure     AssistantErrorCode = "AST-020002"
)

// AssistantError represents an assistant error with code and message.
type AssistantError struct {
	Code    AssistantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError with the given code and message.
func NewAssistantError(code AssistantErrorCode, message string, err error) *AssistantError {
	return &AssistantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

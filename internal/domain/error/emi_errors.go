// Package error defines domain-specific errors for the WalletWise application.
package error

import "errors"

// EMI domain errors.
var (
	// ErrEMINotFound is returned when an EMI does not exist or belongs
	// to another user.
	ErrEMINotFound = errors.New("emi not found")

	// ErrInvalidMonths is returned when the installment count is not positive.
	ErrInvalidMonths = errors.New("total months must be positive")

	// ErrInvalidMonthlyAmount is returned when the monthly amount is not positive.
	ErrInvalidMonthlyAmount = errors.New("monthly amount must be positive")

	// ErrEMISettled is returned when recording a payment against a settled EMI.
	ErrEMISettled = errors.New("emi has no remaining installments")
)

// EMIErrorCode defines error codes for EMI errors.
// Format: EMI-XXYYYY where XX is category and YYYY is specific error.
type EMIErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonths        EMIErrorCode = "EMI-010001"
	ErrCodeInvalidMonthlyAmount EMIErrorCode = "EMI-010002"

	// Lookup/state errors (02XXXX)
	ErrCodeEMINotFound EMIErrorCode = "EMI-020001"
	ErrCodeEMISettled  EMIErrorCode = "EMI-020002"
)

// EMIError represents an EMI error with code and message.
type EMIError struct {
	Code    EMIErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EMIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EMIError) Unwrap() error {
	return e.Err
}

// NewEMIError creates a new EMIError with the given code and message.
func NewEMIError(code EMIErrorCode, message string, err error) *EMIError {
	return &EMIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

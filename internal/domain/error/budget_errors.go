// Package error defines domain-specific errors for the WalletWise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist or
	// belongs to another user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetMonth is returned when the month is not YYYY-MM.
	ErrInvalidBudgetMonth = errors.New("month must be in YYYY-MM format")

	// ErrNegativeIncome is returned when total income is negative.
	ErrNegativeIncome = errors.New("total income must not be negative")

	// ErrNegativeAllocation is returned when an allocation amount is negative.
	ErrNegativeAllocation = errors.New("allocation amount must not be negative")

	// ErrDuplicateAllocation is returned when two allocations share a category key.
	ErrDuplicateAllocation = errors.New("duplicate allocation category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BDG-010001"
	ErrCodeNegativeIncome      BudgetErrorCode = "BDG-010002"
	ErrCodeNegativeAllocation  BudgetErrorCode = "BDG-010003"
	ErrCodeDuplicateAllocation BudgetErrorCode = "BDG-010004"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

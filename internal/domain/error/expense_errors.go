// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is invalid (zero or negative).
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrExpenseCategoryNotFound is returned when the category for an expense is not found.
	ErrExpenseCategoryNotFound = errors.New("category not found")

	// ErrUnauthorizedExpenseAccess is returned when user is not authorized to access an expense.
	ErrUnauthorizedExpenseAccess = errors.New("unauthorized access to expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	ErrCodeExpenseNotFound           ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseCategoryNotFound   ExpenseErrorCode = "EXP-010003"
	ErrCodeUnauthorizedExpenseAccess ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010005"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Expense rule domain errors.
var (
	// ErrRuleNotFound is returned when an expense rule is not found in the system.
	ErrRuleNotFound = errors.New("expense rule not found")

	// ErrInvalidRuleFrequency is returned when the rule frequency is not a known value.
	ErrInvalidRuleFrequency = errors.New("invalid rule frequency")

	// ErrInvalidRuleAmount is returned when the rule max amount is invalid (zero or negative).
	ErrInvalidRuleAmount = errors.New("invalid rule max amount")

	// ErrUnauthorizedRuleAccess is returned when user is not authorized to access a rule.
	ErrUnauthorizedRuleAccess = errors.New("unauthorized access to expense rule")
)

// RuleErrorCode defines error codes for expense rule errors.
// Format: RUL-XXYYYY where XX is category and YYYY is specific error.
type RuleErrorCode string

const (
	ErrCodeRuleNotFound           RuleErrorCode = "RUL-010001"
	ErrCodeInvalidRuleFrequency   RuleErrorCode = "RUL-010002"
	ErrCodeInvalidRuleAmount      RuleErrorCode = "RUL-010003"
	ErrCodeUnauthorizedRuleAccess RuleErrorCode = "RUL-010004"
	ErrCodeMissingRuleFields      RuleErrorCode = "RUL-010005"
)

// RuleError represents an expense rule error with code and message.
type RuleError struct {
	Code    RuleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RuleError) Unwrap() error {
	return e.Err
}

// NewRuleError creates a new RuleError with the given code and message.
func NewRuleError(code RuleErrorCode, message string, err error) *RuleError {
	return &RuleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

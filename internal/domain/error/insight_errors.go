// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightNotFound is returned when an insight is not found in the system.
	ErrInsightNotFound = errors.New("insight not found")

	// ErrAdviceUnavailable is returned when the advice service is not configured or fails.
	ErrAdviceUnavailable = errors.New("advice service unavailable")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	ErrCodeInsightNotFound      InsightErrorCode = "INS-010001"
	ErrCodeMissingInsightFields InsightErrorCode = "INS-010002"
	ErrCodeAdviceUnavailable    InsightErrorCode = "INS-020001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

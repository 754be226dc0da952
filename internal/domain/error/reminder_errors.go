// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Payment reminder domain errors.
var (
	// ErrReminderNotFound is returned when a payment reminder is not found in the system.
	ErrReminderNotFound = errors.New("payment reminder not found")

	// ErrInvalidRecurrence is returned when the reminder recurrence is not a known value.
	ErrInvalidRecurrence = errors.New("invalid reminder recurrence")

	// ErrUnauthorizedReminderAccess is returned when user is not authorized to access a reminder.
	ErrUnauthorizedReminderAccess = errors.New("unauthorized access to payment reminder")
)

// ReminderErrorCode defines error codes for payment reminder errors.
// Format: REM-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	ErrCodeReminderNotFound           ReminderErrorCode = "REM-010001"
	ErrCodeInvalidRecurrence          ReminderErrorCode = "REM-010002"
	ErrCodeUnauthorizedReminderAccess ReminderErrorCode = "REM-010003"
	ErrCodeMissingReminderFields      ReminderErrorCode = "REM-010004"
)

// ReminderError represents a payment reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

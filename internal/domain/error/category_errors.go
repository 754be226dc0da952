// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken is returned when a category with the same name already exists.
	ErrCategoryNameTaken = errors.New("category name already in use")

	// ErrDefaultCategoryImmutable is returned when attempting to modify a global default category.
	ErrDefaultCategoryImmutable = errors.New("default categories cannot be modified")

	// ErrUnauthorizedCategoryAccess is returned when user is not authorized to access a category.
	ErrUnauthorizedCategoryAccess = errors.New("unauthorized access to category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound           CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTaken          CategoryErrorCode = "CAT-010002"
	ErrCodeDefaultCategoryImmutable   CategoryErrorCode = "CAT-010003"
	ErrCodeUnauthorizedCategoryAccess CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields      CategoryErrorCode = "CAT-010005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the collection.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrEmptyHabitName is returned when a habit is created with an empty or whitespace-only name.
	ErrEmptyHabitName = errors.New("habit name cannot be empty")

	// ErrInvalidCompletionDate is returned when a completion date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidCompletionDate = errors.New("invalid completion date")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HBT-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyHabitName        HabitErrorCode = "HBT-010001"
	ErrCodeInvalidCompletionDate HabitErrorCode = "HBT-010002"
	ErrCodeHabitNotFound         HabitErrorCode = "HBT-010003"
	ErrCodeMissingHabitFields    HabitErrorCode = "HBT-010004"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

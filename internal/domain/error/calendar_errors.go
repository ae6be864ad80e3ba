// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Calendar domain errors.
var (
	// ErrInvalidCalendarDate is returned when a requested date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")

	// ErrInvalidCalendarMonth is returned when a requested month is outside 1-12.
	ErrInvalidCalendarMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidCalendarYear is returned when a requested year cannot be parsed.
	ErrInvalidCalendarYear = errors.New("invalid calendar year")
)

// CalendarErrorCode defines error codes for calendar errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CalendarErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCalendarDate  CalendarErrorCode = "CAL-010001"
	ErrCodeInvalidCalendarMonth CalendarErrorCode = "CAL-010002"
	ErrCodeInvalidCalendarYear  CalendarErrorCode = "CAL-010003"
)

// CalendarError represents a calendar error with code and message.
type CalendarError struct {
	Code    CalendarErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalendarError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewCalendarError creates a new CalendarError with the given code and message.
func NewCalendarError(code CalendarErrorCode, message string, err error) *CalendarError {
	return &CalendarError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

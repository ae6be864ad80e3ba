// Package error defines domain-specific errors for the Habit Tracker application.
package error

import "errors"

// Session domain errors. The login flow is decorative (no credential
// validation), so the taxonomy covers only input and token handling.
var (
	// ErrUserNotFound is returned when no user record has been stored.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidToken is returned when a session token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a session token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines error codes for session errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010001"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010002"
	ErrCodeUserNotFound  AuthErrorCode = "AUTH-010003"
	ErrCodeRateLimited   AuthErrorCode = "AUTH-010004"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"
)

// AuthError represents a session error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

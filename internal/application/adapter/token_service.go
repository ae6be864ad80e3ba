// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionClaims represents the validated claims of a session token.
type SessionClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for the user.
	GenerateSessionToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateSessionToken validates a session token and returns its claims.
	ValidateSessionToken(ctx context.Context, token string) (*SessionClaims, error)
}

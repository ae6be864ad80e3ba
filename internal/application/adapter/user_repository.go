// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// UserRepository defines the persistence contract for the single local user
// record that gates the dashboard view.
type UserRepository interface {
	// Load reads the stored user record. Returns (nil, nil) when absent.
	Load(ctx context.Context) (*entity.User, error)

	// Save stores the user record, replacing any existing one.
	Save(ctx context.Context, user *entity.User) error

	// Delete removes the stored user record. No-op when absent.
	Delete(ctx context.Context) error
}

// Package auth contains session-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Success bool
}

// LogoutUserUseCase removes the stored user record, closing the session the
// way the reference application did: by deleting the local user document.
type LogoutUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(userRepo adapter.UserRepository) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		userRepo: userRepo,
	}
}

// Execute deletes the stored user record. Logging out with no stored user
// is a no-op.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) (*LogoutUserOutput, error) {
	if err := uc.userRepo.Delete(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &LogoutUserOutput{Success: true}, nil
}

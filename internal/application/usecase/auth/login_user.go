// Package auth contains session-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string // Accepted and ignored; no credential validation exists
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User  *entity.User
	Token string
}

// LoginUserUseCase handles the decorative login flow. Any email logs in:
// the stored user record is reused when the email matches, otherwise a new
// unvalidated record overwrites it.
type LoginUserUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute stores or reuses the user record and issues a session token.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"email is required",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user == nil || user.Email != input.Email {
		user = entity.NewUser(input.Email, "", "")
		if err := uc.userRepo.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to save user: %w", err)
		}
	}

	token, err := uc.tokenService.GenerateSessionToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &LoginUserOutput{
		User:  user,
		Token: token,
	}, nil
}

// Package auth contains session-related use cases.
//
// The flow is decorative by design: neither register nor login validates
// anything against a credential store. A single local user record is
// written so the dashboard view can be gated on its presence, exactly like
// the reference application's local user record.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string // Optional; hashed at rest, never verified
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User  *entity.User
	Token string
}

// RegisterUserUseCase handles the decorative registration flow.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute stores the user record (replacing any existing one) and issues a
// session token.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"email is required",
			domainerror.ErrInvalidEmail,
		)
	}

	passwordHash := ""
	if input.Password != "" {
		hash, err := uc.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash = hash
	}

	user := entity.NewUser(input.Email, input.Name, passwordHash)
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	token, err := uc.tokenService.GenerateSessionToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &RegisterUserOutput{
		User:  user,
		Token: token,
	}, nil
}

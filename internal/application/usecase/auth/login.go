package auth

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// LoginInput represents the input for user login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the output of user login.
type LoginOutput struct {
	User        *entity.User
	AccessToken string
}

// LoginUseCase handles user login.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login. Unknown emails and wrong passwords produce the
// same error so the endpoint does not leak which emails are registered.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginOutput{User: user, AccessToken: token}, nil
}

// Package auth contains user registration and login use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/usecase/rule"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterInput represents the input for user registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterOutput represents the output of user registration.
type RegisterOutput struct {
	User        *entity.User
	AccessToken string
}

// RegisterUseCase handles user registration. New users get the starter
// expense rule set seeded immediately.
type RegisterUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	seedRules       *rule.InitializeDefaultRulesUseCase
}

// NewRegisterUseCase creates a new RegisterUseCase instance.
func NewRegisterUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	seedRules *rule.InitializeDefaultRulesUseCase,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		seedRules:       seedRules,
	}
}

// Execute performs the user registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already registered",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Seeding failure leaves the user without starter rules but does not
	// abort registration.
	if _, err := uc.seedRules.Execute(ctx, rule.InitializeDefaultRulesInput{UserID: user.ID}); err != nil {
		slog.Warn("failed to seed default rules", "user_id", user.ID, "error", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &RegisterOutput{User: user, AccessToken: token}, nil
}

package rule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateRuleInput represents the input for rule update. Nil fields are left
// unchanged.
type UpdateRuleInput struct {
	RuleID         uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Category       *string
	Frequency      *entity.RuleFrequency
	MaxAmountCents *int64
	Description    *string
	IsActive       *bool
}

// UpdateRuleOutput represents the output of rule update.
type UpdateRuleOutput struct {
	Rule *entity.ExpenseRule
}

// UpdateRuleUseCase handles rule update logic.
type UpdateRuleUseCase struct {
	ruleRepo adapter.ExpenseRuleRepository
}

// NewUpdateRuleUseCase creates a new UpdateRuleUseCase instance.
func NewUpdateRuleUseCase(ruleRepo adapter.ExpenseRuleRepository) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{ruleRepo: ruleRepo}
}

// Execute performs the rule update.
func (uc *UpdateRuleUseCase) Execute(ctx context.Context, input UpdateRuleInput) (*UpdateRuleOutput, error) {
	rule, err := uc.ruleRepo.FindByID(ctx, input.RuleID)
	if err != nil {
		return nil, domainerror.NewRuleError(
			domainerror.ErrCodeRuleNotFound,
			"expense rule not found",
			domainerror.ErrRuleNotFound,
		)
	}

	if rule.UserID != input.UserID {
		return nil, domainerror.NewRuleError(
			domainerror.ErrCodeUnauthorizedRuleAccess,
			"expense rule does not belong to user",
			domainerror.ErrUnauthorizedRuleAccess,
		)
	}

	if input.MaxAmountCents != nil {
		if *input.MaxAmountCents <= 0 {
			return nil, domainerror.NewRuleError(
				domainerror.ErrCodeInvalidRuleAmount,
				"max amount must be greater than zero",
				domainerror.ErrInvalidRuleAmount,
			)
		}
		rule.MaxAmountCents = *input.MaxAmountCents
	}

	if input.Frequency != nil {
		if !entity.ValidRuleFrequency(*input.Frequency) {
			return nil, domainerror.NewRuleError(
				domainerror.ErrCodeInvalidRuleFrequency,
				"frequency must be 'daily', 'weekly', 'monthly', 'seasonal', or 'yearly'",
				domainerror.ErrInvalidRuleFrequency,
			)
		}
		rule.Frequency = *input.Frequency
	}

	if input.Name != nil {
		rule.Name = *input.Name
	}
	if input.Category != nil {
		rule.Category = *input.Category
	}
	if input.Description != nil {
		rule.Description = *input.Description
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	rule.UpdatedAt = time.Now().UTC()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}

	return &UpdateRuleOutput{Rule: rule}, nil
}

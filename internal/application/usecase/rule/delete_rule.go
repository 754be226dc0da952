package rule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DeleteRuleInput represents the input for rule deletion.
type DeleteRuleInput struct {
	RuleID uuid.UUID
	UserID uuid.UUID
}

// DeleteRuleUseCase handles rule deletion logic.
type DeleteRuleUseCase struct {
	ruleRepo adapter.ExpenseRuleRepository
}

// NewDeleteRuleUseCase creates a new DeleteRuleUseCase instance.
func NewDeleteRuleUseCase(ruleRepo adapter.ExpenseRuleRepository) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{ruleRepo: ruleRepo}
}

// Execute performs the rule deletion.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, input DeleteRuleInput) error {
	rule, err := uc.ruleRepo.FindByID(ctx, input.RuleID)
	if err != nil {
		return domainerror.NewRuleError(
			domainerror.ErrCodeRuleNotFound,
			"expense rule not found",
			domainerror.ErrRuleNotFound,
		)
	}

	if rule.UserID != input.UserID {
		return domainerror.NewRuleError(
			domainerror.ErrCodeUnauthorizedRuleAccess,
			"expense rule does not belong to user",
			domainerror.ErrUnauthorizedRuleAccess,
		)
	}

	if err := uc.ruleRepo.Delete(ctx, input.RuleID); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	return nil
}

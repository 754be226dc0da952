package rule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListRulesInput represents the input for listing a user's rules.
type ListRulesInput struct {
	UserID uuid.UUID
}

// ListRulesOutput represents the rules in creation order (oldest first).
type ListRulesOutput struct {
	Rules []*entity.ExpenseRule
}

// ListRulesUseCase handles rule listing logic.
type ListRulesUseCase struct {
	ruleRepo adapter.ExpenseRuleRepository
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleRepo adapter.ExpenseRuleRepository) *ListRulesUseCase {
	return &ListRulesUseCase{ruleRepo: ruleRepo}
}

// Execute retrieves the user's rules.
func (uc *ListRulesUseCase) Execute(ctx context.Context, input ListRulesInput) (*ListRulesOutput, error) {
	rules, err := uc.ruleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rules: %w", err)
	}

	return &ListRulesOutput{Rules: rules}, nil
}

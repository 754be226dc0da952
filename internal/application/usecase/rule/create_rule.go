package rule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateRuleInput represents the input for rule creation. MaxAmountCents is
// in minor currency units (分).
type CreateRuleInput struct {
	UserID         uuid.UUID
	Name           string
	Category       string
	Frequency      entity.RuleFrequency
	MaxAmountCents int64
	Description    string
}

// CreateRuleOutput represents the output of rule creation.
type CreateRuleOutput struct {
	Rule *entity.ExpenseRule
}

// CreateRuleUseCase handles expense rule creation logic.
type CreateRuleUseCase struct {
	ruleRepo adapter.ExpenseRuleRepository
}

// NewCreateRuleUseCase creates a new CreateRuleUseCase instance.
func NewCreateRuleUseCase(ruleRepo adapter.ExpenseRuleRepository) *CreateRuleUseCase {
	return &CreateRuleUseCase{ruleRepo: ruleRepo}
}

// Execute performs the rule creation.
func (uc *CreateRuleUseCase) Execute(ctx context.Context, input CreateRuleInput) (*CreateRuleOutput, error) {
	if input.MaxAmountCents <= 0 {
		return nil, domainerror.NewRuleError(
			domainerror.ErrCodeInvalidRuleAmount,
			"max amount must be greater than zero",
			domainerror.ErrInvalidRuleAmount,
		)
	}

	if !entity.ValidRuleFrequency(input.Frequency) {
		return nil, domainerror.NewRuleError(
			domainerror.ErrCodeInvalidRuleFrequency,
			"frequency must be 'daily', 'weekly', 'monthly', 'seasonal', or 'yearly'",
			domainerror.ErrInvalidRuleFrequency,
		)
	}

	rule := entity.NewExpenseRule(
		input.UserID,
		input.Name,
		input.Category,
		input.Frequency,
		input.MaxAmountCents,
		input.Description,
	)

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	return &CreateRuleOutput{Rule: rule}, nil
}

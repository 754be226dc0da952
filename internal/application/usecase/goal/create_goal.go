// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	Type         entity.GoalType
	Deadline     *time.Time
	Icon         string
	Color        string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.Type != entity.GoalTypeSavings && input.Type != entity.GoalTypeSpendingLimit {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be 'savings' or 'spending_limit'",
			domainerror.ErrInvalidGoalType,
		)
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.Description,
		input.TargetAmount,
		input.Type,
		input.Deadline,
		input.Icon,
		input.Color,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

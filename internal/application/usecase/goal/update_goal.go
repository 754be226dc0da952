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

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Name          *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Icon          *string
	Color         *string
	Status        *entity.GoalStatus
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.Status != nil {
		switch *input.Status {
		case entity.GoalStatusActive, entity.GoalStatusCompleted, entity.GoalStatusArchived:
			goal.Status = *input.Status
		default:
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be 'active', 'completed', or 'archived'",
				domainerror.ErrInvalidGoalStatus,
			)
		}
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.CurrentAmount != nil {
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.Icon != nil {
		goal.Icon = *input.Icon
	}
	if input.Color != nil {
		goal.Color = *input.Color
	}

	// Reaching the target completes a savings goal automatically.
	if goal.Type == entity.GoalTypeSavings &&
		goal.Status == entity.GoalStatusActive &&
		goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = entity.GoalStatusCompleted
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

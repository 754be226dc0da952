package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the fetched goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles single goal retrieval.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute retrieves the goal, scoped to the owner.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	return &GetGoalOutput{Goal: goal}, nil
}

package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil
}

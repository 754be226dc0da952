package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing a user's goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the goals, newest first.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute retrieves the user's goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}

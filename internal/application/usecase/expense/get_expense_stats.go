package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// GetExpenseStatsInput represents the input for a spending overview.
type GetExpenseStatsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetExpenseStatsOutput represents aggregated spending for the period.
type GetExpenseStatsOutput struct {
	TotalCents int64
	Count      int64
	ByCategory []*entity.CategoryTotal
}

// GetExpenseStatsUseCase handles spending aggregation logic.
type GetExpenseStatsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseStatsUseCase creates a new GetExpenseStatsUseCase instance.
func NewGetExpenseStatsUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseStatsUseCase {
	return &GetExpenseStatsUseCase{expenseRepo: expenseRepo}
}

// Execute computes the spending overview.
func (uc *GetExpenseStatsUseCase) Execute(ctx context.Context, input GetExpenseStatsInput) (*GetExpenseStatsOutput, error) {
	stats, err := uc.expenseRepo.GetStats(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expense stats: %w", err)
	}

	byCategory, err := uc.expenseRepo.GetTotalsByCategory(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category totals: %w", err)
	}

	return &GetExpenseStatsOutput{
		TotalCents: stats.TotalCents,
		Count:      stats.Count,
		ByCategory: byCategory,
	}, nil
}

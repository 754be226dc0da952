package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.UserID != input.UserID {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeUnauthorizedExpenseAccess,
			"expense does not belong to user",
			domainerror.ErrUnauthorizedExpenseAccess,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

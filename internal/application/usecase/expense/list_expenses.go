package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for expense listing. Nil bounds are
// open.
type ListExpensesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListExpensesOutput represents the expenses, newest first.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves the user's expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByUserID(ctx, input.UserID, adapter.ExpenseFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}

// Package expense contains expense record use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation. Amount is in
// minor currency units (分). Date defaults to now when zero.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AmountCents int64
	Description string
	Date        time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.AmountCents <= 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"category not found",
			domainerror.ErrExpenseCategoryNotFound,
		)
	}

	// Another user's private category is invisible here; defaults are open.
	if category.UserID != nil && *category.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"category not found",
			domainerror.ErrExpenseCategoryNotFound,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := entity.NewExpense(input.UserID, input.CategoryID, input.AmountCents, input.Description, date)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

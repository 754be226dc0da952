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

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	AmountCents *int64
	Description *string
	Date        *time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnauthorizedExpenseAccess,
			"expense does not belong to user",
			domainerror.ErrUnauthorizedExpenseAccess,
		)
	}

	if input.AmountCents != nil {
		if *input.AmountCents <= 0 {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.AmountCents = *input.AmountCents
	}

	if input.CategoryID != nil {
		expense.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseFilter bounds an expense listing. Nil bounds are open.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUserID retrieves expenses for a user, newest first, optionally
	// bounded by date.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetStats aggregates total spending and record count for a period.
	GetStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.ExpenseStats, error)

	// GetTotalsByCategory aggregates spending per category for a period.
	GetTotalsByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CategoryTotal, error)
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a single dated spending record. Amounts are stored in
// minor currency units (分); divide by 100 for yuan.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AmountCents int64
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID, categoryID uuid.UUID, amountCents int64, description string, date time.Time) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: amountCents,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithCategory pairs an expense with its resolved category.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// CategoryTotal represents aggregated spending for one category.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	TotalCents   int64
	Count        int64
}

// ExpenseStats represents aggregated spending over a period.
type ExpenseStats struct {
	TotalCents int64
	Count      int64
}

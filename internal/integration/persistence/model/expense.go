package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Amounts are in
// minor currency units.
type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_expenses_user_date"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountCents int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"not null;index:idx_expenses_user_date"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		AmountCents: m.AmountCents,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
		AmountCents: expense.AmountCents,
		Description: expense.Description,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for recording an expense.
// Amounts are in minor currency units (分).
type CreateExpenseRequest struct {
	CategoryID  string     `json:"category_id" binding:"required,uuid"`
	AmountCents int64      `json:"amount_cents" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

// UpdateExpenseRequest represents the request body for updating an expense.
// Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	CategoryID  *string    `json:"category_id"`
	AmountCents *int64     `json:"amount_cents"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	AmountCents int64     `json:"amount_cents"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse represents a list of expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// CategoryTotalResponse represents aggregated spending for one category.
type CategoryTotalResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	TotalCents   int64  `json:"total_cents"`
	Count        int64  `json:"count"`
}

// ExpenseStatsResponse represents aggregated spending over a period.
type ExpenseStatsResponse struct {
	TotalCents int64                   `json:"total_cents"`
	Count      int64                   `json:"count"`
	ByCategory []CategoryTotalResponse `json:"by_category"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		CategoryID:  expense.CategoryID.String(),
		AmountCents: expense.AmountCents,
		Description: expense.Description,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{Expenses: items}
}

// ToExpenseStatsResponse converts aggregated stats to a response DTO.
func ToExpenseStatsResponse(totalCents, count int64, byCategory []*entity.CategoryTotal) ExpenseStatsResponse {
	items := make([]CategoryTotalResponse, 0, len(byCategory))
	for _, t := range byCategory {
		items = append(items, CategoryTotalResponse{
			CategoryID:   t.CategoryID.String(),
			CategoryName: t.CategoryName,
			TotalCents:   t.TotalCents,
			Count:        t.Count,
		})
	}
	return ExpenseStatsResponse{
		TotalCents: totalCents,
		Count:      count,
		ByCategory: items,
	}
}

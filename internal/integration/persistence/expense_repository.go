package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUserID retrieves expenses for a user, newest first, optionally
// bounded by date.
func (r *expenseRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var expenseModels []model.ExpenseModel
	result := query.Order("date DESC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetStats aggregates total spending and record count for a period.
func (r *expenseRepository) GetStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.ExpenseStats, error) {
	var row struct {
		Total int64
		Count int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(amount_cents), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.ExpenseStats{
		TotalCents: row.Total,
		Count:      row.Count,
	}, nil
}

// GetTotalsByCategory aggregates spending per category for a period, largest
// total first.
func (r *expenseRepository) GetTotalsByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CategoryTotal, error) {
	var rows []struct {
		CategoryID   uuid.UUID
		CategoryName string
		Total        int64
		Count        int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("expenses.category_id AS category_id, categories.name AS category_name, COALESCE(SUM(expenses.amount_cents), 0) AS total, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ? AND expenses.date >= ? AND expenses.date <= ?", userID, start, end).
		Group("expenses.category_id, categories.name").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]*entity.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = &entity.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			TotalCents:   row.Total,
			Count:        row.Count,
		}
	}
	return totals, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// expenseRuleRepository implements the adapter.ExpenseRuleRepository interface.
type expenseRuleRepository struct {
	db *gorm.DB
}

// NewExpenseRuleRepository creates a new expense rule repository instance.
func NewExpenseRuleRepository(db *gorm.DB) adapter.ExpenseRuleRepository {
	return &expenseRuleRepository{
		db: db,
	}
}

// Create creates a new expense rule in the database.
func (r *expenseRuleRepository) Create(ctx context.Context, rule *entity.ExpenseRule) error {
	ruleModel := model.ExpenseRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Create(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a rule by its ID.
func (r *expenseRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseRule, error) {
	var ruleModel model.ExpenseRuleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// FindByUserID retrieves all rules for a user in creation order, oldest
// first. Evaluation depends on this ordering.
func (r *expenseRuleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseRule, error) {
	var ruleModels []model.ExpenseRuleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make([]*entity.ExpenseRule, len(ruleModels))
	for i, rm := range ruleModels {
		rules[i] = rm.ToEntity()
	}
	return rules, nil
}

// Update updates an existing rule in the database.
func (r *expenseRuleRepository) Update(ctx context.Context, rule *entity.ExpenseRule) error {
	ruleModel := model.ExpenseRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Save(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a rule from the database.
func (r *expenseRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseRuleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

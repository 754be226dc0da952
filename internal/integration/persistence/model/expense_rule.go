package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseRuleModel represents the expense_rules table in the database.
type ExpenseRuleModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Category       string    `gorm:"type:varchar(100);not null;index"`
	Frequency      string    `gorm:"type:varchar(20);not null"`
	MaxAmountCents int64     `gorm:"not null"`
	Description    string    `gorm:"type:text"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseRuleModel.
func (ExpenseRuleModel) TableName() string {
	return "expense_rules"
}

// ToEntity converts an ExpenseRuleModel to a domain ExpenseRule entity.
func (m *ExpenseRuleModel) ToEntity() *entity.ExpenseRule {
	return &entity.ExpenseRule{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Category:       m.Category,
		Frequency:      entity.RuleFrequency(m.Frequency),
		MaxAmountCents: m.MaxAmountCents,
		Description:    m.Description,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ExpenseRuleFromEntity creates an ExpenseRuleModel from a domain ExpenseRule entity.
func ExpenseRuleFromEntity(rule *entity.ExpenseRule) *ExpenseRuleModel {
	return &ExpenseRuleModel{
		ID:             rule.ID,
		UserID:         rule.UserID,
		Name:           rule.Name,
		Category:       rule.Category,
		Frequency:      string(rule.Frequency),
		MaxAmountCents: rule.MaxAmountCents,
		Description:    rule.Description,
		IsActive:       rule.IsActive,
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
	}
}

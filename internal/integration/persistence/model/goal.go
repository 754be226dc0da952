package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Type          string          `gorm:"type:varchar(20);not null"`
	Deadline      *time.Time      `gorm:"type:date"`
	Icon          string          `gorm:"type:varchar(50)"`
	Color         string          `gorm:"type:varchar(20)"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Type:          entity.GoalType(m.Type),
		Deadline:      m.Deadline,
		Icon:          m.Icon,
		Color:         m.Color,
		Status:        entity.GoalStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Type:          string(goal.Type),
		Deadline:      goal.Deadline,
		Icon:          goal.Icon,
		Color:         goal.Color,
		Status:        string(goal.Status),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

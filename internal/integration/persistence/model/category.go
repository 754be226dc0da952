package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database. A NULL
// user_id marks a global default category.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Icon      string     `gorm:"type:varchar(50)"`
	Color     string     `gorm:"type:varchar(20)"`
	IsDefault bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Icon:      m.Icon,
		Color:     m.Color,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
	}
}

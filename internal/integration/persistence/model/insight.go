package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// InsightModel represents the insights table in the database.
type InsightModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the InsightModel.
func (InsightModel) TableName() string {
	return "insights"
}

// ToEntity converts an InsightModel to a domain Insight entity.
func (m *InsightModel) ToEntity() *entity.Insight {
	return &entity.Insight{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.InsightType(m.Type),
		Title:     m.Title,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// InsightFromEntity creates an InsightModel from a domain Insight entity.
func InsightFromEntity(insight *entity.Insight) *InsightModel {
	return &InsightModel{
		ID:        insight.ID,
		UserID:    insight.UserID,
		Type:      string(insight.Type),
		Title:     insight.Title,
		Content:   insight.Content,
		IsRead:    insight.IsRead,
		CreatedAt: insight.CreatedAt,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightTypeAdvice      InsightType = "advice"
	InsightTypeWarning     InsightType = "warning"
	InsightTypeAchievement InsightType = "achievement"
)

// Insight represents a piece of generated financial advice stored for a user.
type Insight struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      InsightType
	Title     string
	Content   string
	IsRead    bool
	CreatedAt time.Time
}

// NewInsight creates a new Insight entity.
func NewInsight(userID uuid.UUID, insightType InsightType, title, content string) *Insight {
	return &Insight{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      insightType,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents an expense category. Categories with a nil UserID are
// global defaults visible to every user. Expense rules match categories by
// name, not by ID.
type Category struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Name      string
	Icon      string
	Color     string
	IsDefault bool
	CreatedAt time.Time
}

// NewCategory creates a new Category entity. A nil userID with isDefault
// true produces a global default category.
func NewCategory(userID *uuid.UUID, name, icon, color string, isDefault bool) *Category {
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Icon:      icon,
		Color:     color,
		IsDefault: isDefault,
		CreatedAt: time.Now().UTC(),
	}
}

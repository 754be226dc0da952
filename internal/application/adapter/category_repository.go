// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUserID retrieves the categories visible to a user: the user's own
	// plus the global defaults, defaults first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Delete removes a user-owned category from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

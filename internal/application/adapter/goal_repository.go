// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

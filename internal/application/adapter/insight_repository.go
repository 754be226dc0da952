// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// InsightRepository defines the interface for insight persistence operations.
type InsightRepository interface {
	// Create creates a new insight in the database.
	Create(ctx context.Context, insight *entity.Insight) error

	// FindByUserID retrieves the most recent insights for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Insight, error)

	// MarkAsRead flags an insight as read, scoped by owner.
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
}

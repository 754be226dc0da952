// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AssetRepository defines the interface for asset persistence operations.
type AssetRepository interface {
	// Create creates a new asset in the database.
	Create(ctx context.Context, asset *entity.Asset) error

	// FindByUserID retrieves all assets for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error)
}

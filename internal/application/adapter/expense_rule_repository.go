// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseRuleRepository defines the interface for expense rule persistence
// operations.
type ExpenseRuleRepository interface {
	// Create creates a new expense rule in the database.
	Create(ctx context.Context, rule *entity.ExpenseRule) error

	// FindByID retrieves a rule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseRule, error)

	// FindByUserID retrieves all rules for a user in creation order (oldest
	// first). The rule engine depends on this ordering: the first eligible
	// rule wins.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseRule, error)

	// Update updates an existing rule in the database.
	Update(ctx context.Context, rule *entity.ExpenseRule) error

	// Delete removes a rule from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

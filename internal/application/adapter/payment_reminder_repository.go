// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// PaymentReminderRepository defines the interface for payment reminder
// persistence operations.
type PaymentReminderRepository interface {
	// Create creates a new payment reminder in the database.
	Create(ctx context.Context, reminder *entity.PaymentReminder) error

	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentReminder, error)

	// FindByUserID retrieves all reminders for a user ordered by due date.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentReminder, error)

	// FindDueBefore retrieves unpaid reminders due before the given time,
	// oldest due date first, limited to batchSize rows.
	FindDueBefore(ctx context.Context, before time.Time, batchSize int) ([]*entity.PaymentReminder, error)

	// Update updates an existing reminder in the database.
	Update(ctx context.Context, reminder *entity.PaymentReminder) error

	// Delete removes a reminder from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

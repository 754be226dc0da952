package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListRemindersInput represents the input for reminder listing.
type ListRemindersInput struct {
	UserID uuid.UUID
}

// ListRemindersOutput represents the reminders ordered by due date.
type ListRemindersOutput struct {
	Reminders []*entity.PaymentReminder
}

// ListRemindersUseCase handles reminder listing logic.
type ListRemindersUseCase struct {
	reminderRepo adapter.PaymentReminderRepository
}

// NewListRemindersUseCase creates a new ListRemindersUseCase instance.
func NewListRemindersUseCase(reminderRepo adapter.PaymentReminderRepository) *ListRemindersUseCase {
	return &ListRemindersUseCase{reminderRepo: reminderRepo}
}

// Execute retrieves the user's reminders.
func (uc *ListRemindersUseCase) Execute(ctx context.Context, input ListRemindersInput) (*ListRemindersOutput, error) {
	reminders, err := uc.reminderRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}

	return &ListRemindersOutput{Reminders: reminders}, nil
}

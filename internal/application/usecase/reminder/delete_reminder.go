package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DeleteReminderInput represents the input for reminder deletion.
type DeleteReminderInput struct {
	ReminderID uuid.UUID
	UserID     uuid.UUID
}

// DeleteReminderUseCase handles reminder deletion logic.
type DeleteReminderUseCase struct {
	reminderRepo adapter.PaymentReminderRepository
}

// NewDeleteReminderUseCase creates a new DeleteReminderUseCase instance.
func NewDeleteReminderUseCase(reminderRepo adapter.PaymentReminderRepository) *DeleteReminderUseCase {
	return &DeleteReminderUseCase{reminderRepo: reminderRepo}
}

// Execute performs the reminder deletion.
func (uc *DeleteReminderUseCase) Execute(ctx context.Context, input DeleteReminderInput) error {
	reminder, err := uc.reminderRepo.FindByID(ctx, input.ReminderID)
	if err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeReminderNotFound,
			"payment reminder not found",
			domainerror.ErrReminderNotFound,
		)
	}

	if reminder.UserID != input.UserID {
		return domainerror.NewReminderError(
			domainerror.ErrCodeUnauthorizedReminderAccess,
			"payment reminder does not belong to user",
			domainerror.ErrUnauthorizedReminderAccess,
		)
	}

	if err := uc.reminderRepo.Delete(ctx, input.ReminderID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

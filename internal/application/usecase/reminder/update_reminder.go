package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateReminderInput represents the input for reminder update. Nil fields
// are left unchanged. Moving the due date clears the notification stamp so
// the worker fires again for the new date.
type UpdateReminderInput struct {
	ReminderID         uuid.UUID
	UserID             uuid.UUID
	Name               *string
	Category           *string
	AmountCents        *int64
	DueDate            *time.Time
	OptimalPaymentDate *time.Time
	Recurrence         *entity.ReminderRecurrence
	Notes              *string
	IsPaid             *bool
}

// UpdateReminderOutput represents the output of reminder update.
type UpdateReminderOutput struct {
	Reminder *entity.PaymentReminder
}

// UpdateReminderUseCase handles reminder update logic.
type UpdateReminderUseCase struct {
	reminderRepo adapter.PaymentReminderRepository
}

// NewUpdateReminderUseCase creates a new UpdateReminderUseCase instance.
func NewUpdateReminderUseCase(reminderRepo adapter.PaymentReminderRepository) *UpdateReminderUseCase {
	return &UpdateReminderUseCase{reminderRepo: reminderRepo}
}

// Execute performs the reminder update.
func (uc *UpdateReminderUseCase) Execute(ctx context.Context, input UpdateReminderInput) (*UpdateReminderOutput, error) {
	reminder, err := uc.reminderRepo.FindByID(ctx, input.ReminderID)
	if err != nil {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeReminderNotFound,
			"payment reminder not found",
			domainerror.ErrReminderNotFound,
		)
	}

	if reminder.UserID != input.UserID {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeUnauthorizedReminderAccess,
			"payment reminder does not belong to user",
			domainerror.ErrUnauthorizedReminderAccess,
		)
	}

	if input.Recurrence != nil {
		if !validRecurrence(*input.Recurrence) {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeInvalidRecurrence,
				"recurrence must be 'none', 'monthly', or 'yearly'",
				domainerror.ErrInvalidRecurrence,
			)
		}
		reminder.Recurrence = *input.Recurrence
	}

	if input.DueDate != nil && !input.DueDate.Equal(reminder.DueDate) {
		reminder.DueDate = *input.DueDate
		reminder.NotifiedAt = nil
	}

	if input.Name != nil {
		reminder.Name = *input.Name
	}
	if input.Category != nil {
		reminder.Category = *input.Category
	}
	if input.AmountCents != nil {
		reminder.AmountCents = *input.AmountCents
	}
	if input.OptimalPaymentDate != nil {
		reminder.OptimalPaymentDate = input.OptimalPaymentDate
	}
	if input.Notes != nil {
		reminder.Notes = *input.Notes
	}
	if input.IsPaid != nil {
		reminder.IsPaid = *input.IsPaid
	}
	reminder.UpdatedAt = time.Now().UTC()

	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return &UpdateReminderOutput{Reminder: reminder}, nil
}

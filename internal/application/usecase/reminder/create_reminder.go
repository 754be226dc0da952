// Package reminder contains payment reminder use cases.
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

func validRecurrence(r entity.ReminderRecurrence) bool {
	switch r {
	case entity.RecurrenceNone, entity.RecurrenceMonthly, entity.RecurrenceYearly:
		return true
	}
	return false
}

// CreateReminderInput represents the input for reminder creation. Amount is
// in minor currency units (分).
type CreateReminderInput struct {
	UserID             uuid.UUID
	Name               string
	Category           string
	AmountCents        int64
	DueDate            time.Time
	OptimalPaymentDate *time.Time
	Recurrence         entity.ReminderRecurrence
	Notes              string
}

// CreateReminderOutput represents the output of reminder creation.
type CreateReminderOutput struct {
	Reminder *entity.PaymentReminder
}

// CreateReminderUseCase handles reminder creation logic.
type CreateReminderUseCase struct {
	reminderRepo adapter.PaymentReminderRepository
}

// NewCreateReminderUseCase creates a new CreateReminderUseCase instance.
func NewCreateReminderUseCase(reminderRepo adapter.PaymentReminderRepository) *CreateReminderUseCase {
	return &CreateReminderUseCase{reminderRepo: reminderRepo}
}

// Execute performs the reminder creation.
func (uc *CreateReminderUseCase) Execute(ctx context.Context, input CreateReminderInput) (*CreateReminderOutput, error) {
	recurrence := input.Recurrence
	if recurrence == "" {
		recurrence = entity.RecurrenceNone
	}
	if !validRecurrence(recurrence) {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence must be 'none', 'monthly', or 'yearly'",
			domainerror.ErrInvalidRecurrence,
		)
	}

	reminder := entity.NewPaymentReminder(
		input.UserID,
		input.Name,
		input.Category,
		input.AmountCents,
		input.DueDate,
		input.OptimalPaymentDate,
		recurrence,
		input.Notes,
	)

	if err := uc.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return &CreateReminderOutput{Reminder: reminder}, nil
}

package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeReminderRepo struct {
	reminders []*entity.PaymentReminder
	err       error
}

func (f *fakeReminderRepo) Create(ctx context.Context, reminder *entity.PaymentReminder) error {
	if f.err != nil {
		return f.err
	}
	f.reminders = append(f.reminders, reminder)
	return nil
}

func (f *fakeReminderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentReminder, error) {
	for _, r := range f.reminders {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeReminderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentReminder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reminders, nil
}

func (f *fakeReminderRepo) FindDueBefore(ctx context.Context, before time.Time, batchSize int) ([]*entity.PaymentReminder, error) {
	return nil, nil
}

func (f *fakeReminderRepo) Update(ctx context.Context, reminder *entity.PaymentReminder) error {
	return f.err
}

func (f *fakeReminderRepo) Delete(ctx context.Context, id uuid.UUID) error { return f.err }

func TestCreateReminder(t *testing.T) {
	userID := uuid.New()

	t.Run("defaults recurrence to none", func(t *testing.T) {
		repo := &fakeReminderRepo{}
		uc := NewCreateReminderUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateReminderInput{
			UserID:      userID,
			Name:        "房租",
			Category:    "住房",
			AmountCents: 300000,
			DueDate:     time.Now().AddDate(0, 0, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Reminder.Recurrence != entity.RecurrenceNone {
			t.Errorf("expected recurrence none, got %s", out.Reminder.Recurrence)
		}
		if out.Reminder.IsPaid {
			t.Error("new reminders must be unpaid")
		}
	})

	t.Run("rejects unknown recurrence", func(t *testing.T) {
		uc := NewCreateReminderUseCase(&fakeReminderRepo{})

		_, err := uc.Execute(context.Background(), CreateReminderInput{
			UserID:     userID,
			Name:       "房租",
			DueDate:    time.Now(),
			Recurrence: entity.ReminderRecurrence("weekly"),
		})
		if !errors.Is(err, domainerror.ErrInvalidRecurrence) {
			t.Errorf("expected ErrInvalidRecurrence, got %v", err)
		}
	})
}

func TestUpdateReminder(t *testing.T) {
	userID := uuid.New()

	newReminder := func() *entity.PaymentReminder {
		return entity.NewPaymentReminder(userID, "房租", "住房", 300000,
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), nil, entity.RecurrenceMonthly, "")
	}

	t.Run("moving the due date clears the notification stamp", func(t *testing.T) {
		r := newReminder()
		notified := time.Now()
		r.NotifiedAt = &notified
		uc := NewUpdateReminderUseCase(&fakeReminderRepo{reminders: []*entity.PaymentReminder{r}})

		due := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
		out, err := uc.Execute(context.Background(), UpdateReminderInput{
			ReminderID: r.ID,
			UserID:     userID,
			DueDate:    &due,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Reminder.NotifiedAt != nil {
			t.Error("expected notification stamp cleared")
		}
		if !out.Reminder.DueDate.Equal(due) {
			t.Errorf("unexpected due date: %v", out.Reminder.DueDate)
		}
	})

	t.Run("marking paid keeps the notification stamp", func(t *testing.T) {
		r := newReminder()
		notified := time.Now()
		r.NotifiedAt = &notified
		uc := NewUpdateReminderUseCase(&fakeReminderRepo{reminders: []*entity.PaymentReminder{r}})

		paid := true
		out, err := uc.Execute(context.Background(), UpdateReminderInput{
			ReminderID: r.ID,
			UserID:     userID,
			IsPaid:     &paid,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Reminder.IsPaid {
			t.Error("expected reminder marked paid")
		}
		if out.Reminder.NotifiedAt == nil {
			t.Error("notification stamp should be untouched")
		}
	})

	t.Run("rejects another user's reminder", func(t *testing.T) {
		r := newReminder()
		uc := NewUpdateReminderUseCase(&fakeReminderRepo{reminders: []*entity.PaymentReminder{r}})

		paid := true
		_, err := uc.Execute(context.Background(), UpdateReminderInput{
			ReminderID: r.ID,
			UserID:     uuid.New(),
			IsPaid:     &paid,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedReminderAccess) {
			t.Errorf("expected ErrUnauthorizedReminderAccess, got %v", err)
		}
	})
}

func TestNeedsNotification(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lead := 72 * time.Hour

	newReminder := func(due time.Time) *entity.PaymentReminder {
		return entity.NewPaymentReminder(userID, "房租", "住房", 300000, due, nil, entity.RecurrenceNone, "")
	}

	t.Run("due within the lead window", func(t *testing.T) {
		r := newReminder(now.Add(48 * time.Hour))
		if !r.NeedsNotification(now, lead) {
			t.Error("expected notification needed")
		}
	})

	t.Run("due beyond the lead window", func(t *testing.T) {
		r := newReminder(now.Add(96 * time.Hour))
		if r.NeedsNotification(now, lead) {
			t.Error("expected no notification yet")
		}
	})

	t.Run("paid reminders never notify", func(t *testing.T) {
		r := newReminder(now.Add(24 * time.Hour))
		r.IsPaid = true
		if r.NeedsNotification(now, lead) {
			t.Error("paid reminder must not notify")
		}
	})

	t.Run("already notified for this due date", func(t *testing.T) {
		r := newReminder(now.Add(24 * time.Hour))
		stamp := now.Add(-1 * time.Hour)
		r.NotifiedAt = &stamp
		if r.NeedsNotification(now, lead) {
			t.Error("expected at most one notification per due date")
		}
	})
}

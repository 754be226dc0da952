package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

type fakeReminderStore struct {
	reminders []*entity.PaymentReminder
	updated   []*entity.PaymentReminder
}

func (f *fakeReminderStore) Create(ctx context.Context, r *entity.PaymentReminder) error {
	f.reminders = append(f.reminders, r)
	return nil
}

func (f *fakeReminderStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentReminder, error) {
	return nil, errors.New("record not found")
}

func (f *fakeReminderStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentReminder, error) {
	return f.reminders, nil
}

func (f *fakeReminderStore) FindDueBefore(ctx context.Context, before time.Time, batchSize int) ([]*entity.PaymentReminder, error) {
	var due []*entity.PaymentReminder
	for _, r := range f.reminders {
		if !r.IsPaid && !r.DueDate.After(before) {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeReminderStore) Update(ctx context.Context, r *entity.PaymentReminder) error {
	f.updated = append(f.updated, r)
	return nil
}

func (f *fakeReminderStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeUserStore struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserStore) Create(ctx context.Context, u *entity.User) error { return nil }

func (f *fakeUserStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.New("record not found")
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (f *fakeSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ProviderID: "msg-1"}, nil
}

func TestWorkerProcessBatch(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	user := entity.NewUser("xiaoming@example.com", "小明", "hash")

	newWorker := func(store *fakeReminderStore, sender *fakeSender) *Worker {
		w := NewWorker(store, &fakeUserStore{users: map[uuid.UUID]*entity.User{user.ID: user}}, sender, WorkerConfig{
			PollInterval: time.Minute,
			LeadTime:     72 * time.Hour,
			BatchSize:    10,
		})
		w.now = func() time.Time { return now }
		return w
	}

	t.Run("notifies a reminder inside the lead window once", func(t *testing.T) {
		reminder := entity.NewPaymentReminder(user.ID, "房租", "住房", 300000,
			now.Add(48*time.Hour), nil, entity.RecurrenceMonthly, "")
		store := &fakeReminderStore{reminders: []*entity.PaymentReminder{reminder}}
		sender := &fakeSender{}
		w := newWorker(store, sender)

		w.ProcessBatch(context.Background())

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "xiaoming@example.com" {
			t.Errorf("unexpected recipient: %s", sender.sent[0].To)
		}
		if reminder.NotifiedAt == nil {
			t.Fatal("expected the reminder stamped")
		}

		// Second pass must not notify again.
		w.ProcessBatch(context.Background())
		if len(sender.sent) != 1 {
			t.Errorf("expected no second email, got %d", len(sender.sent))
		}
	})

	t.Run("reminders outside the lead window wait", func(t *testing.T) {
		reminder := entity.NewPaymentReminder(user.ID, "保险", "保险", 50000,
			now.Add(30*24*time.Hour), nil, entity.RecurrenceYearly, "")
		store := &fakeReminderStore{reminders: []*entity.PaymentReminder{reminder}}
		sender := &fakeSender{}
		w := newWorker(store, sender)

		w.ProcessBatch(context.Background())

		if len(sender.sent) != 0 {
			t.Errorf("expected no email, got %d", len(sender.sent))
		}
	})

	t.Run("send failure leaves the stamp unset for retry", func(t *testing.T) {
		reminder := entity.NewPaymentReminder(user.ID, "房租", "住房", 300000,
			now.Add(24*time.Hour), nil, entity.RecurrenceMonthly, "")
		store := &fakeReminderStore{reminders: []*entity.PaymentReminder{reminder}}
		sender := &fakeSender{err: errors.New("provider down")}
		w := newWorker(store, sender)

		w.ProcessBatch(context.Background())

		if reminder.NotifiedAt != nil {
			t.Error("expected no stamp after a failed send")
		}
	})

	t.Run("paid reminders are skipped", func(t *testing.T) {
		reminder := entity.NewPaymentReminder(user.ID, "水电", "住房", 20000,
			now.Add(24*time.Hour), nil, entity.RecurrenceMonthly, "")
		reminder.IsPaid = true
		store := &fakeReminderStore{reminders: []*entity.PaymentReminder{reminder}}
		sender := &fakeSender{}
		w := newWorker(store, sender)

		w.ProcessBatch(context.Background())

		if len(sender.sent) != 0 {
			t.Errorf("expected no email for a paid reminder, got %d", len(sender.sent))
		}
	})
}

package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// Worker watches payment reminders and emails users before a due date.
type Worker struct {
	reminders    adapter.PaymentReminderRepository
	users        adapter.UserRepository
	sender       adapter.EmailSender
	pollInterval time.Duration
	leadTime     time.Duration
	batchSize    int
	now          func() time.Time
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	PollInterval time.Duration
	LeadTime     time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: time.Minute,
		LeadTime:     72 * time.Hour,
		BatchSize:    10,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(
	reminders adapter.PaymentReminderRepository,
	users adapter.UserRepository,
	sender adapter.EmailSender,
	config WorkerConfig,
) *Worker {
	return &Worker{
		reminders:    reminders,
		users:        users,
		sender:       sender,
		pollInterval: config.PollInterval,
		leadTime:     config.LeadTime,
		batchSize:    config.BatchSize,
		now:          time.Now,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"lead_time", w.leadTime,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.ProcessBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch fetches reminders entering the lead window and notifies each
// at most once per due date.
func (w *Worker) ProcessBatch(ctx context.Context) {
	now := w.now()
	due, err := w.reminders.FindDueBefore(ctx, now.Add(w.leadTime), w.batchSize)
	if err != nil {
		slog.Error("Failed to fetch due reminders", "error", err)
		return
	}

	for _, reminder := range due {
		select {
		case <-ctx.Done():
			return
		default:
			w.processReminder(ctx, reminder, now)
		}
	}
}

// processReminder sends one notification and stamps the reminder.
func (w *Worker) processReminder(ctx context.Context, reminder *entity.PaymentReminder, now time.Time) {
	if !reminder.NeedsNotification(now, w.leadTime) {
		return
	}

	logger := slog.With(
		"reminder_id", reminder.ID,
		"user_id", reminder.UserID,
		"due_date", reminder.DueDate,
	)

	user, err := w.users.FindByID(ctx, reminder.UserID)
	if err != nil {
		logger.Error("Failed to resolve reminder owner", "error", err)
		return
	}

	subject, html, text := renderReminderEmail(user.Name, reminder)
	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		// Leave the stamp unset; the next poll retries.
		logger.Error("Failed to send reminder email", "error", err)
		return
	}

	reminder.MarkNotified(now)
	if err := w.reminders.Update(ctx, reminder); err != nil {
		logger.Error("Failed to stamp reminder as notified", "error", err)
		return
	}

	logger.Info("Reminder notification sent", "provider_id", result.ProviderID)
}

// renderReminderEmail builds the notification subject and bodies.
func renderReminderEmail(name string, reminder *entity.PaymentReminder) (subject, html, text string) {
	amountYuan := float64(reminder.AmountCents) / 100
	due := reminder.DueDate.Format("2006-01-02")

	subject = fmt.Sprintf("付款提醒：%s（%s 到期）", reminder.Name, due)
	text = fmt.Sprintf("%s，您好！\n\n您的付款「%s」（¥%.2f）将于 %s 到期，请及时安排。\n\n— SpendWise",
		name, reminder.Name, amountYuan, due)
	html = fmt.Sprintf(
		`<p>%s，您好！</p><p>您的付款「<strong>%s</strong>」（¥%.2f）将于 <strong>%s</strong> 到期，请及时安排。</p><p>— SpendWise</p>`,
		name, reminder.Name, amountYuan, due)

	return subject, html, text
}

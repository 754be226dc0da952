// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderRecurrence represents how often a payment reminder repeats.
type ReminderRecurrence string

const (
	RecurrenceNone    ReminderRecurrence = "none"
	RecurrenceMonthly ReminderRecurrence = "monthly"
	RecurrenceYearly  ReminderRecurrence = "yearly"
)

// PaymentReminder represents an upcoming payment the user wants to be
// notified about. Amounts are in minor currency units.
type PaymentReminder struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	Category           string
	AmountCents        int64
	DueDate            time.Time
	OptimalPaymentDate *time.Time
	Recurrence         ReminderRecurrence
	Notes              string
	IsPaid             bool
	NotifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewPaymentReminder creates a new PaymentReminder entity.
func NewPaymentReminder(
	userID uuid.UUID,
	name string,
	category string,
	amountCents int64,
	dueDate time.Time,
	optimalPaymentDate *time.Time,
	recurrence ReminderRecurrence,
	notes string,
) *PaymentReminder {
	now := time.Now().UTC()

	return &PaymentReminder{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		Category:           category,
		AmountCents:        amountCents,
		DueDate:            dueDate,
		OptimalPaymentDate: optimalPaymentDate,
		Recurrence:         recurrence,
		Notes:              notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// MarkNotified records that a notification was sent for the current due date.
func (r *PaymentReminder) MarkNotified(at time.Time) {
	r.NotifiedAt = &at
	r.UpdatedAt = time.Now().UTC()
}

// NeedsNotification reports whether the reminder is due within the lead
// window and has not yet been notified for the current due date.
func (r *PaymentReminder) NeedsNotification(now time.Time, lead time.Duration) bool {
	if r.IsPaid {
		return false
	}
	if r.DueDate.After(now.Add(lead)) {
		return false
	}
	return r.NotifiedAt == nil || r.NotifiedAt.Before(r.DueDate.Add(-lead))
}

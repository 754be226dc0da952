package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateReminderRequest represents the request body for creating a payment
// reminder.
type CreateReminderRequest struct {
	Name               string     `json:"name" binding:"required,min=1,max=100"`
	Category           string     `json:"category"`
	AmountCents        int64      `json:"amount_cents" binding:"required"`
	DueDate            time.Time  `json:"due_date" binding:"required"`
	OptimalPaymentDate *time.Time `json:"optimal_payment_date"`
	Recurrence         string     `json:"recurrence"`
	Notes              string     `json:"notes"`
}

// UpdateReminderRequest represents the request body for updating a reminder.
// Nil fields are left unchanged.
type UpdateReminderRequest struct {
	Name               *string    `json:"name"`
	Category           *string    `json:"category"`
	AmountCents        *int64     `json:"amount_cents"`
	DueDate            *time.Time `json:"due_date"`
	OptimalPaymentDate *time.Time `json:"optimal_payment_date"`
	Recurrence         *string    `json:"recurrence"`
	Notes              *string    `json:"notes"`
	IsPaid             *bool      `json:"is_paid"`
}

// ReminderResponse represents a payment reminder in API responses.
type ReminderResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Category           string     `json:"category,omitempty"`
	AmountCents        int64      `json:"amount_cents"`
	DueDate            time.Time  `json:"due_date"`
	OptimalPaymentDate *time.Time `json:"optimal_payment_date,omitempty"`
	Recurrence         string     `json:"recurrence"`
	Notes              string     `json:"notes,omitempty"`
	IsPaid             bool       `json:"is_paid"`
	NotifiedAt         *time.Time `json:"notified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ReminderListResponse represents a list of payment reminders.
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// ToReminderResponse converts a domain PaymentReminder entity to a DTO.
func ToReminderResponse(reminder *entity.PaymentReminder) ReminderResponse {
	return ReminderResponse{
		ID:                 reminder.ID.String(),
		Name:               reminder.Name,
		Category:           reminder.Category,
		AmountCents:        reminder.AmountCents,
		DueDate:            reminder.DueDate,
		OptimalPaymentDate: reminder.OptimalPaymentDate,
		Recurrence:         string(reminder.Recurrence),
		Notes:              reminder.Notes,
		IsPaid:             reminder.IsPaid,
		NotifiedAt:         reminder.NotifiedAt,
		CreatedAt:          reminder.CreatedAt,
	}
}

// ToReminderListResponse converts a slice of reminders to a list response.
func ToReminderListResponse(reminders []*entity.PaymentReminder) ReminderListResponse {
	items := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, ToReminderResponse(r))
	}
	return ReminderListResponse{Reminders: items}
}

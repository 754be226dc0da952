package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// PaymentReminderModel represents the payment_reminders table in the database.
type PaymentReminderModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Category           string     `gorm:"type:varchar(100)"`
	AmountCents        int64      `gorm:"not null"`
	DueDate            time.Time  `gorm:"not null;index"`
	OptimalPaymentDate *time.Time `gorm:"type:date"`
	Recurrence         string     `gorm:"type:varchar(20);not null;default:'none'"`
	Notes              string     `gorm:"type:text"`
	IsPaid             bool       `gorm:"not null;default:false;index"`
	NotifiedAt         *time.Time
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentReminderModel.
func (PaymentReminderModel) TableName() string {
	return "payment_reminders"
}

// ToEntity converts a PaymentReminderModel to a domain PaymentReminder entity.
func (m *PaymentReminderModel) ToEntity() *entity.PaymentReminder {
	return &entity.PaymentReminder{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		Category:           m.Category,
		AmountCents:        m.AmountCents,
		DueDate:            m.DueDate,
		OptimalPaymentDate: m.OptimalPaymentDate,
		Recurrence:         entity.ReminderRecurrence(m.Recurrence),
		Notes:              m.Notes,
		IsPaid:             m.IsPaid,
		NotifiedAt:         m.NotifiedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// PaymentReminderFromEntity creates a PaymentReminderModel from a domain
// PaymentReminder entity.
func PaymentReminderFromEntity(reminder *entity.PaymentReminder) *PaymentReminderModel {
	return &PaymentReminderModel{
		ID:                 reminder.ID,
		UserID:             reminder.UserID,
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
		UpdatedAt:          reminder.UpdatedAt,
	}
}

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// paymentReminderRepository implements the adapter.PaymentReminderRepository
// interface.
type paymentReminderRepository struct {
	db *gorm.DB
}

// NewPaymentReminderRepository creates a new payment reminder repository
// instance.
func NewPaymentReminderRepository(db *gorm.DB) adapter.PaymentReminderRepository {
	return &paymentReminderRepository{
		db: db,
	}
}

// Create creates a new payment reminder in the database.
func (r *paymentReminderRepository) Create(ctx context.Context, reminder *entity.PaymentReminder) error {
	reminderModel := model.PaymentReminderFromEntity(reminder)
	result := r.db.WithContext(ctx).Create(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a reminder by its ID.
func (r *paymentReminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentReminder, error) {
	var reminderModel model.PaymentReminderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&reminderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReminderNotFound
		}
		return nil, result.Error
	}
	return reminderModel.ToEntity(), nil
}

// FindByUserID retrieves all reminders for a user ordered by due date.
func (r *paymentReminderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentReminder, error) {
	var reminderModels []model.PaymentReminderModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reminders := make([]*entity.PaymentReminder, len(reminderModels))
	for i, rm := range reminderModels {
		reminders[i] = rm.ToEntity()
	}
	return reminders, nil
}

// FindDueBefore retrieves unpaid reminders due before the given time, oldest
// due date first, limited to batchSize rows.
func (r *paymentReminderRepository) FindDueBefore(ctx context.Context, before time.Time, batchSize int) ([]*entity.PaymentReminder, error) {
	var reminderModels []model.PaymentReminderModel
	result := r.db.WithContext(ctx).
		Where("is_paid = ? AND due_date <= ?", false, before).
		Order("due_date ASC").
		Limit(batchSize).
		Find(&reminderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reminders := make([]*entity.PaymentReminder, len(reminderModels))
	for i, rm := range reminderModels {
		reminders[i] = rm.ToEntity()
	}
	return reminders, nil
}

// Update updates an existing reminder in the database.
func (r *paymentReminderRepository) Update(ctx context.Context, reminder *entity.PaymentReminder) error {
	reminderModel := model.PaymentReminderFromEntity(reminder)
	result := r.db.WithContext(ctx).Save(reminderModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a reminder from the database.
func (r *paymentReminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PaymentReminderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

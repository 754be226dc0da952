package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{
		db: db,
	}
}

// Create creates a new insight in the database.
func (r *insightRepository) Create(ctx context.Context, insight *entity.Insight) error {
	insightModel := model.InsightFromEntity(insight)
	result := r.db.WithContext(ctx).Create(insightModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves the most recent insights for a user.
func (r *insightRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Insight, error) {
	var insightModels []model.InsightModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&insightModels)
	if result.Error != nil {
		return nil, result.Error
	}

	insights := make([]*entity.Insight, len(insightModels))
	for i, im := range insightModels {
		insights[i] = im.ToEntity()
	}
	return insights, nil
}

// MarkAsRead flags an insight as read, scoped by owner.
func (r *insightRepository) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.InsightModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInsightNotFound
	}
	return nil
}

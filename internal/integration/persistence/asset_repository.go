package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// assetRepository implements the adapter.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// Create creates a new asset in the database.
func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetModel := model.AssetFromEntity(asset)
	result := r.db.WithContext(ctx).Create(assetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves all assets for a user, newest first.
func (r *assetRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	var assetModels []model.AssetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	assets := make([]*entity.Asset, len(assetModels))
	for i, am := range assetModels {
		assets[i] = am.ToEntity()
	}
	return assets, nil
}

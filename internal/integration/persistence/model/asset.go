package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AssetModel represents the assets table in the database.
type AssetModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	Category               string    `gorm:"type:varchar(100);not null;index"`
	PurchasePriceCents     int64     `gorm:"not null"`
	PurchaseDate           time.Time `gorm:"not null"`
	ExpectedLifespanMonths int       `gorm:"not null"`
	Notes                  string    `gorm:"type:text"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	return &entity.Asset{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Name:                   m.Name,
		Category:               m.Category,
		PurchasePriceCents:     m.PurchasePriceCents,
		PurchaseDate:           m.PurchaseDate,
		ExpectedLifespanMonths: m.ExpectedLifespanMonths,
		Notes:                  m.Notes,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(asset *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:                     asset.ID,
		UserID:                 asset.UserID,
		Name:                   asset.Name,
		Category:               asset.Category,
		PurchasePriceCents:     asset.PurchasePriceCents,
		PurchaseDate:           asset.PurchaseDate,
		ExpectedLifespanMonths: asset.ExpectedLifespanMonths,
		Notes:                  asset.Notes,
		CreatedAt:              asset.CreatedAt,
		UpdatedAt:              asset.UpdatedAt,
	}
}

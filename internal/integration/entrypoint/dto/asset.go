package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateAssetRequest represents the request body for recording an asset.
// A zero lifespan falls back to the category default.
type CreateAssetRequest struct {
	Name                   string    `json:"name" binding:"required,min=1,max=100"`
	Category               string    `json:"category" binding:"required"`
	PurchasePriceCents     int64     `json:"purchase_price_cents" binding:"required"`
	PurchaseDate           time.Time `json:"purchase_date" binding:"required"`
	ExpectedLifespanMonths int       `json:"expected_lifespan_months"`
	Notes                  string    `json:"notes"`
}

// AssetResponse represents an asset in API responses.
type AssetResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Category               string    `json:"category"`
	PurchasePriceCents     int64     `json:"purchase_price_cents"`
	PurchaseDate           time.Time `json:"purchase_date"`
	ExpectedLifespanMonths int       `json:"expected_lifespan_months"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// AssetListResponse represents a list of assets.
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// ReplacementCheckResponse represents the asset replacement verdict.
type ReplacementCheckResponse struct {
	ShouldReplace bool           `json:"should_replace"`
	Reason        string         `json:"reason"`
	ExistingAsset *AssetResponse `json:"existing_asset,omitempty"`
}

// ToAssetResponse converts a domain Asset entity to an AssetResponse DTO.
func ToAssetResponse(asset *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:                     asset.ID.String(),
		Name:                   asset.Name,
		Category:               asset.Category,
		PurchasePriceCents:     asset.PurchasePriceCents,
		PurchaseDate:           asset.PurchaseDate,
		ExpectedLifespanMonths: asset.ExpectedLifespanMonths,
		Notes:                  asset.Notes,
		CreatedAt:              asset.CreatedAt,
	}
}

// ToAssetListResponse converts a slice of assets to a list response.
func ToAssetListResponse(assets []*entity.Asset) AssetListResponse {
	items := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, ToAssetResponse(a))
	}
	return AssetListResponse{Assets: items}
}

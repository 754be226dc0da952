package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListAssetsInput represents the input for asset listing.
type ListAssetsInput struct {
	UserID uuid.UUID
}

// ListAssetsOutput represents the assets, newest first.
type ListAssetsOutput struct {
	Assets []*entity.Asset
}

// ListAssetsUseCase handles asset listing logic.
type ListAssetsUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.AssetRepository) *ListAssetsUseCase {
	return &ListAssetsUseCase{assetRepo: assetRepo}
}

// Execute retrieves the user's assets.
func (uc *ListAssetsUseCase) Execute(ctx context.Context, input ListAssetsInput) (*ListAssetsOutput, error) {
	assets, err := uc.assetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}

	return &ListAssetsOutput{Assets: assets}, nil
}

// Package asset contains owned-asset use cases.
package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// CreateAssetInput represents the input for asset registration. A zero
// ExpectedLifespanMonths falls back to the static lifespan table.
type CreateAssetInput struct {
	UserID                 uuid.UUID
	Name                   string
	Category               string
	PurchasePriceCents     int64
	PurchaseDate           time.Time
	ExpectedLifespanMonths int
	Notes                  string
}

// CreateAssetOutput represents the output of asset registration.
type CreateAssetOutput struct {
	Asset *entity.Asset
}

// CreateAssetUseCase handles asset registration logic.
type CreateAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(assetRepo adapter.AssetRepository) *CreateAssetUseCase {
	return &CreateAssetUseCase{assetRepo: assetRepo}
}

// Execute performs the asset registration.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*CreateAssetOutput, error) {
	if input.ExpectedLifespanMonths < 0 {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeInvalidLifespan,
			"expected lifespan must not be negative",
			domainerror.ErrInvalidLifespan,
		)
	}

	lifespan := input.ExpectedLifespanMonths
	if lifespan == 0 {
		lifespan = valueobject.DefaultLifespan(input.Category)
	}

	asset := entity.NewAsset(
		input.UserID,
		input.Name,
		input.Category,
		input.PurchasePriceCents,
		input.PurchaseDate,
		lifespan,
		input.Notes,
	)

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &CreateAssetOutput{Asset: asset}, nil
}

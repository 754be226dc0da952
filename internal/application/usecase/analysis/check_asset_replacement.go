// Package analysis contains the expense analysis use cases.
package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// CheckAssetReplacementInput represents the input for an asset replacement
// check.
type CheckAssetReplacementInput struct {
	UserID   uuid.UUID
	Category string
}

// CheckAssetReplacementOutput represents the replacement recommendation.
// ExistingAsset is nil when the user has no recorded asset of the category.
type CheckAssetReplacementOutput struct {
	ShouldReplace bool
	Reason        string
	ExistingAsset *entity.Asset
}

// CheckAssetReplacementUseCase decides whether an asset category is due for
// replacement based on elapsed ownership time versus expected lifespan.
type CheckAssetReplacementUseCase struct {
	assetRepo adapter.AssetRepository
	now       func() time.Time
}

// NewCheckAssetReplacementUseCase creates a new CheckAssetReplacementUseCase
// instance.
func NewCheckAssetReplacementUseCase(assetRepo adapter.AssetRepository) *CheckAssetReplacementUseCase {
	return &CheckAssetReplacementUseCase{
		assetRepo: assetRepo,
		now:       time.Now,
	}
}

// Execute performs the replacement check.
func (uc *CheckAssetReplacementUseCase) Execute(ctx context.Context, input CheckAssetReplacementInput) (*CheckAssetReplacementOutput, error) {
	assets, err := uc.assetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}

	var existing *entity.Asset
	for _, asset := range assets {
		if asset.Category == input.Category {
			existing = asset
			break
		}
	}

	if existing == nil {
		// No recorded asset reads as "you should acquire or record one".
		return &CheckAssetReplacementOutput{
			ShouldReplace: true,
			Reason:        "您还没有记录此类资产",
		}, nil
	}

	// Ownership age uses a 30-day month approximation, not calendar months.
	monthsOwned := uc.now().Sub(existing.PurchaseDate).Hours() / (24 * 30)
	wholeMonths := int(math.Floor(monthsOwned))

	if monthsOwned >= float64(existing.ExpectedLifespanMonths) {
		return &CheckAssetReplacementOutput{
			ShouldReplace: true,
			Reason: fmt.Sprintf("您的%s已使用%d个月，达到建议更换周期（%d个月）",
				existing.Name, wholeMonths, existing.ExpectedLifespanMonths),
			ExistingAsset: existing,
		}, nil
	}

	remainingMonths := existing.ExpectedLifespanMonths - wholeMonths
	return &CheckAssetReplacementOutput{
		ShouldReplace: false,
		Reason: fmt.Sprintf("您的%s已使用%d个月，建议还可使用%d个月后再更换",
			existing.Name, wholeMonths, remainingMonths),
		ExistingAsset: existing,
	}, nil
}

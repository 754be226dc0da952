package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

type fakeAssetRepo struct {
	assets []*entity.Asset
	err    error
}

func (f *fakeAssetRepo) Create(ctx context.Context, asset *entity.Asset) error { return nil }

func (f *fakeAssetRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assets, nil
}

func TestCheckAssetReplacement(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newUseCase := func(repo *fakeAssetRepo) *CheckAssetReplacementUseCase {
		uc := NewCheckAssetReplacementUseCase(repo)
		uc.now = func() time.Time { return now }
		return uc
	}

	newAsset := func(name, category string, monthsAgo int, lifespan int) *entity.Asset {
		return &entity.Asset{
			ID:                     uuid.New(),
			UserID:                 userID,
			Name:                   name,
			Category:               category,
			PurchasePriceCents:     500000,
			PurchaseDate:           now.Add(-time.Duration(monthsAgo) * 30 * 24 * time.Hour),
			ExpectedLifespanMonths: lifespan,
		}
	}

	t.Run("no matching asset recommends acquisition", func(t *testing.T) {
		uc := newUseCase(&fakeAssetRepo{})

		out, err := uc.Execute(context.Background(), CheckAssetReplacementInput{
			UserID:   userID,
			Category: "手机",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.ShouldReplace {
			t.Error("expected shouldReplace true when no asset is recorded")
		}
		if out.Reason != "您还没有记录此类资产" {
			t.Errorf("unexpected reason: %s", out.Reason)
		}
		if out.ExistingAsset != nil {
			t.Error("expected nil existing asset")
		}
	})

	t.Run("asset past lifespan should be replaced", func(t *testing.T) {
		uc := newUseCase(&fakeAssetRepo{assets: []*entity.Asset{
			newAsset("iPhone 12", "手机", 40, 36),
		}})

		out, err := uc.Execute(context.Background(), CheckAssetReplacementInput{
			UserID:   userID,
			Category: "手机",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.ShouldReplace {
			t.Error("expected shouldReplace true past lifespan")
		}
		if !strings.Contains(out.Reason, "已使用40个月") {
			t.Errorf("unexpected reason: %s", out.Reason)
		}
		if !strings.Contains(out.Reason, "36个月") {
			t.Errorf("reason should cite the lifespan: %s", out.Reason)
		}
		if out.ExistingAsset == nil || out.ExistingAsset.Name != "iPhone 12" {
			t.Error("expected the matched asset in the output")
		}
	})

	t.Run("asset within lifespan should not be replaced", func(t *testing.T) {
		uc := newUseCase(&fakeAssetRepo{assets: []*entity.Asset{
			newAsset("MacBook", "电脑", 20, 54),
		}})

		out, err := uc.Execute(context.Background(), CheckAssetReplacementInput{
			UserID:   userID,
			Category: "电脑",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.ShouldReplace {
			t.Error("expected shouldReplace false within lifespan")
		}
		if !strings.Contains(out.Reason, "已使用20个月") {
			t.Errorf("unexpected reason: %s", out.Reason)
		}
		if !strings.Contains(out.Reason, "还可使用34个月") {
			t.Errorf("reason should cite remaining months: %s", out.Reason)
		}
	})

	t.Run("first matching asset wins", func(t *testing.T) {
		uc := newUseCase(&fakeAssetRepo{assets: []*entity.Asset{
			newAsset("新手机", "手机", 2, 36),
			newAsset("旧手机", "手机", 48, 36),
		}})

		out, err := uc.Execute(context.Background(), CheckAssetReplacementInput{
			UserID:   userID,
			Category: "手机",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.ShouldReplace {
			t.Error("expected the newer asset to drive the decision")
		}
		if out.ExistingAsset.Name != "新手机" {
			t.Errorf("expected first matching asset, got %s", out.ExistingAsset.Name)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		uc := newUseCase(&fakeAssetRepo{err: repoErr})

		_, err := uc.Execute(context.Background(), CheckAssetReplacementInput{
			UserID:   userID,
			Category: "手机",
		})
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})
}

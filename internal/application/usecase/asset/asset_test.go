package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeAssetRepo struct {
	assets []*entity.Asset
	err    error
}

func (f *fakeAssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	if f.err != nil {
		return f.err
	}
	f.assets = append(f.assets, asset)
	return nil
}

func (f *fakeAssetRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assets, nil
}

func TestCreateAsset(t *testing.T) {
	userID := uuid.New()

	t.Run("zero lifespan falls back to the static table", func(t *testing.T) {
		repo := &fakeAssetRepo{}
		uc := NewCreateAssetUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateAssetInput{
			UserID:             userID,
			Name:               "iPhone 15",
			Category:           "手机",
			PurchasePriceCents: 599900,
			PurchaseDate:       time.Now().AddDate(0, -2, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Asset.ExpectedLifespanMonths != 36 {
			t.Errorf("expected phone lifespan 36, got %d", out.Asset.ExpectedLifespanMonths)
		}
	})

	t.Run("unknown category falls back to the default lifespan", func(t *testing.T) {
		uc := NewCreateAssetUseCase(&fakeAssetRepo{})

		out, err := uc.Execute(context.Background(), CreateAssetInput{
			UserID:             userID,
			Name:               "咖啡机",
			Category:           "小家电",
			PurchasePriceCents: 80000,
			PurchaseDate:       time.Now(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Asset.ExpectedLifespanMonths != 36 {
			t.Errorf("expected default lifespan 36, got %d", out.Asset.ExpectedLifespanMonths)
		}
	})

	t.Run("explicit lifespan wins", func(t *testing.T) {
		uc := NewCreateAssetUseCase(&fakeAssetRepo{})

		out, err := uc.Execute(context.Background(), CreateAssetInput{
			UserID:                 userID,
			Name:                   "游戏本",
			Category:               "电脑",
			PurchasePriceCents:     999900,
			PurchaseDate:           time.Now(),
			ExpectedLifespanMonths: 24,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Asset.ExpectedLifespanMonths != 24 {
			t.Errorf("expected lifespan 24, got %d", out.Asset.ExpectedLifespanMonths)
		}
	})

	t.Run("rejects negative lifespan", func(t *testing.T) {
		uc := NewCreateAssetUseCase(&fakeAssetRepo{})

		_, err := uc.Execute(context.Background(), CreateAssetInput{
			UserID:                 userID,
			Name:                   "手表",
			Category:               "手表",
			ExpectedLifespanMonths: -1,
		})
		if !errors.Is(err, domainerror.ErrInvalidLifespan) {
			t.Errorf("expected ErrInvalidLifespan, got %v", err)
		}
	})
}

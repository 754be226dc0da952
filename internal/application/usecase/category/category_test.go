package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeCategoryRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id, userID uuid.UUID) error { return f.err }

func TestCreateCategory(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a user category", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "宠物",
			Icon:   "🐱",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Category.IsDefault {
			t.Error("user categories must not be defaults")
		}
		if out.Category.UserID == nil || *out.Category.UserID != userID {
			t.Error("expected the category to belong to the user")
		}
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		existing := entity.NewCategory(nil, "餐饮", "🍜", "", true)
		uc := NewCreateCategoryUseCase(&fakeCategoryRepo{categories: []*entity.Category{existing}})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "餐饮",
		})
		if !errors.Is(err, domainerror.ErrCategoryNameTaken) {
			t.Errorf("expected ErrCategoryNameTaken, got %v", err)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	userID := uuid.New()

	t.Run("refuses to delete a default category", func(t *testing.T) {
		def := entity.NewCategory(nil, "餐饮", "🍜", "", true)
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepo{categories: []*entity.Category{def}})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: def.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrDefaultCategoryImmutable) {
			t.Errorf("expected ErrDefaultCategoryImmutable, got %v", err)
		}
	})

	t.Run("refuses another user's category", func(t *testing.T) {
		otherID := uuid.New()
		own := entity.NewCategory(&otherID, "宠物", "🐱", "", false)
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepo{categories: []*entity.Category{own}})

		err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: own.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrUnauthorizedCategoryAccess) {
			t.Errorf("expected ErrUnauthorizedCategoryAccess, got %v", err)
		}
	})

	t.Run("deletes a user category", func(t *testing.T) {
		own := entity.NewCategory(&userID, "宠物", "🐱", "", false)
		uc := NewDeleteCategoryUseCase(&fakeCategoryRepo{categories: []*entity.Category{own}})

		if err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: own.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

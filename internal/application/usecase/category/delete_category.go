package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic. Global defaults
// cannot be deleted.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.IsDefault || category.UserID == nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategoryImmutable,
			"default categories cannot be deleted",
			domainerror.ErrDefaultCategoryImmutable,
		)
	}

	if *category.UserID != input.UserID {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeUnauthorizedCategoryAccess,
			"category does not belong to user",
			domainerror.ErrUnauthorizedCategoryAccess,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// defaultCategorySeeds are the global categories visible to every user.
// Names line up with the price reference table and the default rule seeds.
var defaultCategorySeeds = []struct {
	name string
	icon string
}{
	{"餐饮", "🍜"},
	{"交通", "🚇"},
	{"娱乐", "🎮"},
	{"服饰", "👕"},
	{"电子产品", "📱"},
	{"日用品", "🧴"},
}

// SeedDefaultCategories inserts any missing global default categories.
// Safe to run on every startup.
func SeedDefaultCategories(ctx context.Context, db *gorm.DB) error {
	for _, seed := range defaultCategorySeeds {
		var count int64
		err := db.WithContext(ctx).
			Model(&model.CategoryModel{}).
			Where("name = ? AND user_id IS NULL", seed.name).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check default category %s: %w", seed.name, err)
		}
		if count > 0 {
			continue
		}

		category := entity.NewCategory(nil, seed.name, seed.icon, "", true)
		if err := db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error; err != nil {
			return fmt.Errorf("failed to seed default category %s: %w", seed.name, err)
		}
	}
	return nil
}

package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse represents a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
	}
}

// ToCategoryListResponse converts a slice of categories to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, ToCategoryResponse(c))
	}
	return CategoryListResponse{Categories: items}
}

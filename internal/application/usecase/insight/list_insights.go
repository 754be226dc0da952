package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// defaultInsightLimit caps a listing when the caller does not specify one.
const defaultInsightLimit = 20

// ListInsightsInput represents the input for insight listing.
type ListInsightsInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListInsightsOutput represents the insights, newest first.
type ListInsightsOutput struct {
	Insights []*entity.Insight
}

// ListInsightsUseCase handles insight listing logic.
type ListInsightsUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(insightRepo adapter.InsightRepository) *ListInsightsUseCase {
	return &ListInsightsUseCase{insightRepo: insightRepo}
}

// Execute retrieves the user's insights.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultInsightLimit
	}

	insights, err := uc.insightRepo.FindByUserID(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch insights: %w", err)
	}

	return &ListInsightsOutput{Insights: insights}, nil
}

package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
)

// MarkInsightReadInput represents the input for flagging an insight read.
type MarkInsightReadInput struct {
	InsightID uuid.UUID
	UserID    uuid.UUID
}

// MarkInsightReadUseCase handles the read flag update.
type MarkInsightReadUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewMarkInsightReadUseCase creates a new MarkInsightReadUseCase instance.
func NewMarkInsightReadUseCase(insightRepo adapter.InsightRepository) *MarkInsightReadUseCase {
	return &MarkInsightReadUseCase{insightRepo: insightRepo}
}

// Execute flags the insight as read, scoped to the owner.
func (uc *MarkInsightReadUseCase) Execute(ctx context.Context, input MarkInsightReadInput) error {
	if err := uc.insightRepo.MarkAsRead(ctx, input.InsightID, input.UserID); err != nil {
		return fmt.Errorf("failed to mark insight as read: %w", err)
	}
	return nil
}

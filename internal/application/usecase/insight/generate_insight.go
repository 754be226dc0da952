// Package insight contains LLM-backed spending insight use cases.
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// GenerateInsightInput represents the input for insight generation. Context
// is optional free text from the caller, folded into the prompt.
type GenerateInsightInput struct {
	UserID  uuid.UUID
	Context string
}

// GenerateInsightOutput represents the generated insight. Cached is true
// when the advice came from the cache without consulting the model.
type GenerateInsightOutput struct {
	Insight *entity.Insight
	Cached  bool
}

// GenerateInsightUseCase builds a spending summary prompt, consults the
// advice cache, invokes the model on a miss, and persists the result.
type GenerateInsightUseCase struct {
	insightRepo   adapter.InsightRepository
	expenseRepo   adapter.ExpenseRepository
	adviceService adapter.AdviceService
	adviceCache   adapter.AdviceCache
	now           func() time.Time
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(
	insightRepo adapter.InsightRepository,
	expenseRepo adapter.ExpenseRepository,
	adviceService adapter.AdviceService,
	adviceCache adapter.AdviceCache,
) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{
		insightRepo:   insightRepo,
		expenseRepo:   expenseRepo,
		adviceService: adviceService,
		adviceCache:   adviceCache,
		now:           time.Now,
	}
}

// Execute generates a spending advice insight.
func (uc *GenerateInsightUseCase) Execute(ctx context.Context, input GenerateInsightInput) (*GenerateInsightOutput, error) {
	if !uc.adviceService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeAdviceUnavailable,
			"advice service is not configured",
			domainerror.ErrAdviceUnavailable,
		)
	}

	now := uc.now()
	prompt, err := uc.buildPrompt(ctx, input.UserID, input.Context, now)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("advice:%s:%s", input.UserID, now.Format("2006-01-02"))

	advice, hit, err := uc.adviceCache.Get(ctx, cacheKey)
	if err != nil {
		// A broken cache degrades to a model call.
		hit = false
	}

	cached := hit
	if !hit {
		advice, err = uc.adviceService.GenerateAdvice(ctx, prompt)
		if err != nil {
			return nil, domainerror.NewInsightError(
				domainerror.ErrCodeAdviceUnavailable,
				"advice generation failed",
				err,
			)
		}
		// Losing the cache entry only costs a future model call.
		_ = uc.adviceCache.Set(ctx, cacheKey, advice)
	}

	generated := entity.NewInsight(input.UserID, entity.InsightTypeAdvice, "消费建议", advice)
	if err := uc.insightRepo.Create(ctx, generated); err != nil {
		return nil, fmt.Errorf("failed to persist insight: %w", err)
	}

	return &GenerateInsightOutput{Insight: generated, Cached: cached}, nil
}

// buildPrompt summarizes the user's last 30 days of spending for the model.
func (uc *GenerateInsightUseCase) buildPrompt(ctx context.Context, userID uuid.UUID, extra string, now time.Time) (string, error) {
	start := now.AddDate(0, -1, 0)

	stats, err := uc.expenseRepo.GetStats(ctx, userID, start, now)
	if err != nil {
		return "", fmt.Errorf("failed to compute expense stats: %w", err)
	}

	totals, err := uc.expenseRepo.GetTotalsByCategory(ctx, userID, start, now)
	if err != nil {
		return "", fmt.Errorf("failed to compute category totals: %w", err)
	}

	var b strings.Builder
	b.WriteString("你是一位个人理财助手。以下是用户最近30天的消费概况：\n")
	fmt.Fprintf(&b, "总支出：¥%.2f，共%d笔。\n", float64(stats.TotalCents)/100, stats.Count)
	for _, t := range totals {
		fmt.Fprintf(&b, "- %s：¥%.2f（%d笔）\n", t.CategoryName, float64(t.TotalCents)/100, t.Count)
	}
	if extra != "" {
		fmt.Fprintf(&b, "用户补充：%s\n", extra)
	}
	b.WriteString("请用中文给出简短、可执行的省钱建议（不超过200字）。")

	return b.String(), nil
}

package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

type fakeGoalRepo struct {
	goals []*entity.Goal
	err   error
}

func (f *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return nil }

func (f *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}

func (f *fakeGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.goals, nil
}

func (f *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return nil }

func (f *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newTestGoal(userID uuid.UUID, name string, target, current float64, deadline *time.Time, status entity.GoalStatus) *entity.Goal {
	return &entity.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  decimal.NewFromFloat(target),
		CurrentAmount: decimal.NewFromFloat(current),
		Type:          entity.GoalTypeSavings,
		Deadline:      deadline,
		Status:        status,
	}
}

func TestAnalyzeExpense(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newUseCase := func(repo *fakeGoalRepo) *AnalyzeExpenseUseCase {
		uc := NewAnalyzeExpenseUseCase(repo)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("amount inside band is reasonable", func(t *testing.T) {
		uc := newUseCase(&fakeGoalRepo{})

		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 3000, // 30元, band 15-50 avg 30
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.IsReasonable {
			t.Error("expected expense to be reasonable")
		}
		if out.PriceIndex.Expected != 30 {
			t.Errorf("expected price index 30, got %v", out.PriceIndex.Expected)
		}
		if out.PriceIndex.Actual != 30 {
			t.Errorf("expected actual 30, got %v", out.PriceIndex.Actual)
		}
		if out.PriceIndex.Difference != 0 {
			t.Errorf("expected zero difference, got %v", out.PriceIndex.Difference)
		}
		if !strings.Contains(out.Recommendation, "合理范围内") {
			t.Errorf("unexpected recommendation: %s", out.Recommendation)
		}
		if out.Encouragement != "✨ 理性消费，给自己加油！" {
			t.Errorf("unexpected encouragement: %s", out.Encouragement)
		}
	})

	t.Run("band boundaries are inclusive", func(t *testing.T) {
		uc := newUseCase(&fakeGoalRepo{})

		for _, cents := range []int64{1500, 5000} { // 15元 and 50元
			out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
				UserID:      userID,
				Category:    "餐饮",
				AmountCents: cents,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.IsReasonable {
				t.Errorf("amount %d should be reasonable at band boundary", cents)
			}
		}
	})

	t.Run("amount above band is unreasonable with warning", func(t *testing.T) {
		uc := newUseCase(&fakeGoalRepo{})

		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 10000, // 100元 > max 50
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.IsReasonable {
			t.Error("expected expense to be unreasonable")
		}
		if !strings.Contains(out.Recommendation, "明显偏高") {
			t.Errorf("unexpected recommendation: %s", out.Recommendation)
		}
		if !strings.Contains(out.Recommendation, "超出合理范围") {
			t.Errorf("unexpected recommendation: %s", out.Recommendation)
		}
		if out.Encouragement != "⚠️ 建议三思而后行" {
			t.Errorf("unexpected encouragement: %s", out.Encouragement)
		}
	})

	t.Run("amount below band reads as good value", func(t *testing.T) {
		uc := newUseCase(&fakeGoalRepo{})

		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 1000, // 10元 < min 15
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.IsReasonable {
			t.Error("expected below-band amount to be flagged unreasonable")
		}
		if !strings.Contains(out.Recommendation, "性价比不错") {
			t.Errorf("unexpected recommendation: %s", out.Recommendation)
		}
		if out.Encouragement != "👍 明智的选择！" {
			t.Errorf("unexpected encouragement: %s", out.Encouragement)
		}
	})

	t.Run("unknown category uses fallback band", func(t *testing.T) {
		uc := newUseCase(&fakeGoalRepo{})

		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "未知类别",
			AmountCents: 50000, // 500元, fallback band 0-1000 avg 100
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.IsReasonable {
			t.Error("expected amount within fallback band to be reasonable")
		}
		if out.PriceIndex.Expected != 100 {
			t.Errorf("expected fallback avg 100, got %v", out.PriceIndex.Expected)
		}
	})

	t.Run("goal impact includes delay above half percent", func(t *testing.T) {
		deadline := now.Add(100 * 24 * time.Hour)
		repo := &fakeGoalRepo{goals: []*entity.Goal{
			// remaining 1000元 over 100 days: 10元/day needed.
			newTestGoal(userID, "买相机", 2000, 1000, &deadline, entity.GoalStatusActive),
		}}
		uc := newUseCase(repo)

		// 30元 expense: delayDays = ceil(30/10) = 3, 3/100 = 3% > 0.5%.
		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 3000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.GoalImpact.AffectedGoals) != 1 {
			t.Fatalf("expected 1 affected goal, got %d", len(out.GoalImpact.AffectedGoals))
		}
		got := out.GoalImpact.AffectedGoals[0]
		if got.GoalName != "买相机" {
			t.Errorf("unexpected goal name: %s", got.GoalName)
		}
		if got.DelayDays != 3 {
			t.Errorf("expected delay of 3 days, got %d", got.DelayDays)
		}
		if math.Abs(got.DelayPercentage-3.0) > 1e-9 {
			t.Errorf("expected delay percentage 3.0, got %v", got.DelayPercentage)
		}
	})

	t.Run("negligible delay is excluded", func(t *testing.T) {
		deadline := now.Add(1000 * 24 * time.Hour)
		repo := &fakeGoalRepo{goals: []*entity.Goal{
			// remaining 10000元 over 1000 days: 10元/day needed.
			newTestGoal(userID, "长期目标", 10000, 0, &deadline, entity.GoalStatusActive),
		}}
		uc := newUseCase(repo)

		// 30元: delayDays = 3, 3/1000 = 0.3% ≤ 0.5% threshold.
		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 3000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.GoalImpact.AffectedGoals) != 0 {
			t.Errorf("expected no affected goals, got %d", len(out.GoalImpact.AffectedGoals))
		}
	})

	t.Run("inactive and deadline-less goals are skipped", func(t *testing.T) {
		deadline := now.Add(10 * 24 * time.Hour)
		repo := &fakeGoalRepo{goals: []*entity.Goal{
			newTestGoal(userID, "已完成", 100, 100, &deadline, entity.GoalStatusCompleted),
			newTestGoal(userID, "已归档", 1000, 0, &deadline, entity.GoalStatusArchived),
			newTestGoal(userID, "无期限", 1000, 0, nil, entity.GoalStatusActive),
			newTestGoal(userID, "已达成", 1000, 1000, &deadline, entity.GoalStatusActive),
		}}
		uc := newUseCase(repo)

		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 3000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.GoalImpact.AffectedGoals) != 0 {
			t.Errorf("expected no affected goals, got %d", len(out.GoalImpact.AffectedGoals))
		}
	})

	t.Run("past deadline clamps to one day remaining", func(t *testing.T) {
		deadline := now.Add(-5 * 24 * time.Hour)
		repo := &fakeGoalRepo{goals: []*entity.Goal{
			newTestGoal(userID, "逾期目标", 1000, 500, &deadline, entity.GoalStatusActive),
		}}
		uc := newUseCase(repo)

		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 3000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.GoalImpact.AffectedGoals) != 1 {
			t.Fatalf("expected 1 affected goal, got %d", len(out.GoalImpact.AffectedGoals))
		}
		// remaining 500元 over 1 day: delayDays = ceil(30/500) = 1, 100%.
		got := out.GoalImpact.AffectedGoals[0]
		if got.DelayDays != 1 {
			t.Errorf("expected delay of 1 day, got %d", got.DelayDays)
		}
		if got.DelayPercentage != 100 {
			t.Errorf("expected delay percentage 100, got %v", got.DelayPercentage)
		}
	})

	t.Run("first affected goal drives the narrative", func(t *testing.T) {
		deadline := now.Add(10 * 24 * time.Hour)
		repo := &fakeGoalRepo{goals: []*entity.Goal{
			// remaining 100元 over 10 days: 10元/day.
			newTestGoal(userID, "主要目标", 100, 0, &deadline, entity.GoalStatusActive),
			newTestGoal(userID, "次要目标", 100, 0, &deadline, entity.GoalStatusActive),
		}}
		uc := newUseCase(repo)

		// 40元 dining: above avg 30 but within band, delay ceil(40/10)=4 days, 40%.
		out, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 4000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.GoalImpact.AffectedGoals) != 2 {
			t.Fatalf("expected 2 affected goals, got %d", len(out.GoalImpact.AffectedGoals))
		}
		if !strings.Contains(out.Recommendation, "主要目标") {
			t.Errorf("recommendation should cite the first goal: %s", out.Recommendation)
		}
		if strings.Contains(out.Recommendation, "次要目标") {
			t.Errorf("recommendation should not cite the second goal: %s", out.Recommendation)
		}
		if !strings.Contains(out.Recommendation, "偏高") {
			t.Errorf("unexpected recommendation: %s", out.Recommendation)
		}
		if out.Encouragement != "💡 请参考决定，量力而行" {
			t.Errorf("unexpected encouragement: %s", out.Encouragement)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		uc := newUseCase(&fakeGoalRepo{err: repoErr})

		_, err := uc.Execute(context.Background(), AnalyzeExpenseInput{
			UserID:      userID,
			Category:    "餐饮",
			AmountCents: 3000,
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})
}

// Package analysis contains the expense analysis use cases: price
// reasonableness, goal impact projection, and asset replacement checks.
package analysis

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// PriceIndex compares the actual amount against the expected price band.
// All values are in yuan.
type PriceIndex struct {
	Expected   float64
	Actual     float64
	Difference float64
	Percentage float64
}

// AffectedGoal describes the projected delay a prospective expense inflicts
// on one active goal.
type AffectedGoal struct {
	GoalName        string
	DelayPercentage float64
	DelayDays       int
}

// GoalImpact aggregates the affected goals. Goals keep store order (newest
// goal first); the first entry is the "main" goal used in narrative text.
type GoalImpact struct {
	AffectedGoals []AffectedGoal
}

// AnalyzeExpenseInput represents the input for expense analysis. Amount is
// in minor currency units (分).
type AnalyzeExpenseInput struct {
	UserID      uuid.UUID
	Category    string
	AmountCents int64
}

// AnalyzeExpenseOutput represents the structured judgment of a prospective
// expense.
type AnalyzeExpenseOutput struct {
	IsReasonable   bool
	PriceIndex     PriceIndex
	GoalImpact     GoalImpact
	Recommendation string
	Encouragement  string
}

// AnalyzeExpenseUseCase computes whether a prospective expense is
// price-reasonable and how much it would delay each active goal. Pure read
// and compute; it never mutates the stores.
type AnalyzeExpenseUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewAnalyzeExpenseUseCase creates a new AnalyzeExpenseUseCase instance.
func NewAnalyzeExpenseUseCase(goalRepo adapter.GoalRepository) *AnalyzeExpenseUseCase {
	return &AnalyzeExpenseUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute performs the expense analysis.
func (uc *AnalyzeExpenseUseCase) Execute(ctx context.Context, input AnalyzeExpenseInput) (*AnalyzeExpenseOutput, error) {
	amountYuan := float64(input.AmountCents) / 100

	band := valueobject.PriceBandFor(input.Category)
	priceDiff := amountYuan - band.Avg
	pricePercentage := (amountYuan - band.Avg) / band.Avg * 100
	isReasonable := band.Contains(amountYuan)

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}

	now := uc.now()
	var affectedGoals []AffectedGoal
	for _, goal := range goals {
		if !goal.IsActive() || goal.Deadline == nil {
			continue
		}
		remaining, _ := goal.Remaining().Float64()
		if remaining <= 0 {
			continue
		}

		daysRemaining := int(math.Ceil(goal.Deadline.Sub(now).Hours() / 24))
		if daysRemaining < 1 {
			daysRemaining = 1
		}

		// Delay is computed in yuan on both sides. The original mixed minor
		// units into this division; see DESIGN.md for the unit decision.
		dailySavingsNeeded := remaining / float64(daysRemaining)
		delayDays := int(math.Ceil(amountYuan / dailySavingsNeeded))
		delayPercentage := float64(delayDays) / float64(daysRemaining) * 100

		// Only goals delayed by more than 0.5% are reported.
		if delayPercentage > 0.5 {
			if delayDays < 1 {
				delayDays = 1
			}
			affectedGoals = append(affectedGoals, AffectedGoal{
				GoalName:        goal.Name,
				DelayPercentage: math.Round(delayPercentage*10) / 10,
				DelayDays:       delayDays,
			})
		}
	}

	recommendation, encouragement := buildRecommendation(input.Category, amountYuan, band, priceDiff, pricePercentage, isReasonable, affectedGoals)

	return &AnalyzeExpenseOutput{
		IsReasonable: isReasonable,
		PriceIndex: PriceIndex{
			Expected:   band.Avg,
			Actual:     amountYuan,
			Difference: priceDiff,
			Percentage: pricePercentage,
		},
		GoalImpact: GoalImpact{
			AffectedGoals: affectedGoals,
		},
		Recommendation: recommendation,
		Encouragement:  encouragement,
	}, nil
}

// buildRecommendation chooses the narrative text from a 4-way branch on
// reasonableness and the sign/magnitude of the price difference.
func buildRecommendation(
	category string,
	amountYuan float64,
	band valueobject.PriceBand,
	priceDiff float64,
	pricePercentage float64,
	isReasonable bool,
	affectedGoals []AffectedGoal,
) (recommendation, encouragement string) {
	switch {
	case isReasonable && priceDiff <= band.Avg*0.1:
		recommendation = fmt.Sprintf("本次%s消费在合理范围内，价格指数正常", category)
		encouragement = "✨ 理性消费，给自己加油！"

	case isReasonable && priceDiff > 0:
		recommendation = fmt.Sprintf("本次%s消费价格指数偏高%.0f元（+%.1f%%）", category, math.Abs(priceDiff), pricePercentage)
		recommendation += goalDelayClause(affectedGoals)
		encouragement = "💡 请参考决定，量力而行"

	case !isReasonable && amountYuan > band.Max:
		recommendation = fmt.Sprintf("本次%s消费价格明显偏高%.0f元（+%.1f%%），超出合理范围", category, math.Abs(priceDiff), pricePercentage)
		recommendation += goalDelayClause(affectedGoals)
		encouragement = "⚠️ 建议三思而后行"

	default:
		recommendation = fmt.Sprintf("本次%s消费价格较低，性价比不错", category)
		encouragement = "👍 明智的选择！"
	}

	return recommendation, encouragement
}

// goalDelayClause renders the main affected goal as a sentence fragment, or
// an empty string when no goal is affected.
func goalDelayClause(affectedGoals []AffectedGoal) string {
	if len(affectedGoals) == 0 {
		return ""
	}
	mainGoal := affectedGoals[0]
	return fmt.Sprintf("，会对\"%s\"达成延迟%s%%，预计晚%d天达成",
		mainGoal.GoalName,
		strconv.FormatFloat(mainGoal.DelayPercentage, 'f', -1, 64),
		mainGoal.DelayDays,
	)
}

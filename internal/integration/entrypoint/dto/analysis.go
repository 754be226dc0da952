package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/analysis"
)

// AnalyzeExpenseRequest represents a prospective expense submitted for
// combined analysis. Amounts are in minor currency units (分).
type AnalyzeExpenseRequest struct {
	Category    string     `json:"category" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"required"`
	Date        *time.Time `json:"date"`
}

// PriceIndexResponse compares the actual amount against the expected price
// band. All values are in yuan.
type PriceIndexResponse struct {
	Expected   float64 `json:"expected"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	Percentage float64 `json:"percentage"`
}

// AffectedGoalResponse describes the projected delay on one active goal.
type AffectedGoalResponse struct {
	GoalName        string  `json:"goal_name"`
	DelayPercentage float64 `json:"delay_percentage"`
	DelayDays       int     `json:"delay_days"`
}

// GoalImpactResponse aggregates the affected goals.
type GoalImpactResponse struct {
	AffectedGoals []AffectedGoalResponse `json:"affected_goals"`
}

// AnalysisResponse represents the combined judgment of a prospective
// expense: price reasonableness, rule verdict, goal impact, and asset
// replacement advice when the category tracks a durable good.
type AnalysisResponse struct {
	IsReasonable     bool                      `json:"is_reasonable"`
	PriceIndex       PriceIndexResponse        `json:"price_index"`
	GoalImpact       GoalImpactResponse        `json:"goal_impact"`
	Recommendation   string                    `json:"recommendation"`
	Encouragement    string                    `json:"encouragement"`
	RuleEvaluation   *EvaluationResponse       `json:"rule_evaluation,omitempty"`
	ReplacementCheck *ReplacementCheckResponse `json:"replacement_check,omitempty"`
}

// ToAnalysisResponse converts an analysis verdict to a response DTO.
func ToAnalysisResponse(out *analysis.AnalyzeExpenseOutput) AnalysisResponse {
	goals := make([]AffectedGoalResponse, 0, len(out.GoalImpact.AffectedGoals))
	for _, g := range out.GoalImpact.AffectedGoals {
		goals = append(goals, AffectedGoalResponse{
			GoalName:        g.GoalName,
			DelayPercentage: g.DelayPercentage,
			DelayDays:       g.DelayDays,
		})
	}
	return AnalysisResponse{
		IsReasonable: out.IsReasonable,
		PriceIndex: PriceIndexResponse{
			Expected:   out.PriceIndex.Expected,
			Actual:     out.PriceIndex.Actual,
			Difference: out.PriceIndex.Difference,
			Percentage: out.PriceIndex.Percentage,
		},
		GoalImpact:     GoalImpactResponse{AffectedGoals: goals},
		Recommendation: out.Recommendation,
		Encouragement:  out.Encouragement,
	}
}

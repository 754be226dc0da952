// Package rule contains the expense rule use cases: evaluation against
// user-configured rules and rule management.
package rule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// diningCategory is the only category the daily frequency window caps. Other
// daily-rule categories pass unconditionally; see checkFrequencyConstraint.
const diningCategory = "餐饮"

// dailyDiningLimit is the number of same-day dining expenses after which a
// daily dining rule blocks.
const dailyDiningLimit = 3

// EvaluateExpenseInput represents a prospective expense to judge. Amount is
// in minor currency units (分). Date defaults to now when nil.
type EvaluateExpenseInput struct {
	UserID      uuid.UUID
	Category    string
	AmountCents int64
	Date        *time.Time
}

// EvaluateExpenseOutput represents the verdict. MatchedRule is set only on
// approval.
type EvaluateExpenseOutput struct {
	Approved    bool
	Reason      string
	MatchedRule *entity.MatchedRule
}

// EvaluateExpenseUseCase judges a prospective expense against the user's
// active rules. Rules are consulted in creation order; the first rule whose
// amount bound admits the expense decides the outcome, and its frequency
// failure is terminal even when a later rule would pass.
type EvaluateExpenseUseCase struct {
	ruleRepo     adapter.ExpenseRuleRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	now          func() time.Time
}

// NewEvaluateExpenseUseCase creates a new EvaluateExpenseUseCase instance.
func NewEvaluateExpenseUseCase(
	ruleRepo adapter.ExpenseRuleRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *EvaluateExpenseUseCase {
	return &EvaluateExpenseUseCase{
		ruleRepo:     ruleRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// Execute evaluates the expense.
func (uc *EvaluateExpenseUseCase) Execute(ctx context.Context, input EvaluateExpenseInput) (*EvaluateExpenseOutput, error) {
	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}

	rules, err := uc.ruleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rules: %w", err)
	}

	var matching []*entity.ExpenseRule
	for _, rule := range rules {
		if rule.IsActive && rule.Category == input.Category {
			matching = append(matching, rule)
		}
	}

	if len(matching) == 0 {
		return &EvaluateExpenseOutput{
			Approved: false,
			Reason:   "没有匹配的消费规则",
		}, nil
	}

	for _, rule := range matching {
		if input.AmountCents > rule.MaxAmountCents {
			continue
		}

		allowed, reason, err := uc.checkFrequencyConstraint(ctx, input.UserID, input.Category, rule.Frequency, date)
		if err != nil {
			return nil, err
		}
		if !allowed {
			// Terminal: the first amount-eligible rule decides.
			return &EvaluateExpenseOutput{
				Approved: false,
				Reason:   fmt.Sprintf("%s（规则：%s）", reason, rule.Name),
			}, nil
		}

		return &EvaluateExpenseOutput{
			Approved: true,
			Reason:   fmt.Sprintf("符合\"%s\"规则，金额在合理范围内（≤¥%d）", rule.Name, rule.MaxAmountCents/100),
			MatchedRule: &entity.MatchedRule{
				ID:             rule.ID,
				Name:           rule.Name,
				MaxAmountCents: rule.MaxAmountCents,
			},
		}, nil
	}

	return &EvaluateExpenseOutput{
		Approved: false,
		Reason:   "金额超出所有匹配规则的限额",
	}, nil
}

// checkFrequencyConstraint inspects the user's past expenses of the category
// within the rule's trailing window. A missing category or an unknown
// frequency is an allowed pass-through, not an error.
func (uc *EvaluateExpenseUseCase) checkFrequencyConstraint(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	frequency entity.RuleFrequency,
	date time.Time,
) (bool, string, error) {
	categories, err := uc.categoryRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch categories: %w", err)
	}

	var categoryID *uuid.UUID
	for _, c := range categories {
		if c.Name == category {
			id := c.ID
			categoryID = &id
			break
		}
	}
	if categoryID == nil {
		// No such category means no expense history to count against.
		return true, "", nil
	}

	expenses, err := uc.expenseRepo.FindByUserID(ctx, userID, adapter.ExpenseFilter{})
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch expenses: %w", err)
	}

	var inCategory []*entity.Expense
	for _, e := range expenses {
		if e.CategoryID == *categoryID {
			inCategory = append(inCategory, e)
		}
	}

	switch frequency {
	case entity.FrequencyDaily:
		count := 0
		for _, e := range inCategory {
			if sameDay(e.Date, date) {
				count++
			}
		}
		// Only dining carries the daily cap. The original behaved this way
		// and existing users rely on unlimited daily entries elsewhere.
		if category == diningCategory && count >= dailyDiningLimit {
			return false, "今日该类别消费已达上限（3次）", nil
		}
		return true, "", nil

	case entity.FrequencyWeekly:
		return windowClear(inCategory, date, 7, "本周该类别已有消费记录")

	case entity.FrequencyMonthly:
		return windowClear(inCategory, date, 30, "本月该类别已有消费记录")

	case entity.FrequencySeasonal:
		return windowClear(inCategory, date, 90, "本季度该类别已有消费记录")

	case entity.FrequencyYearly:
		return windowClear(inCategory, date, 365, "本年度该类别已有消费记录")

	default:
		return true, "", nil
	}
}

// windowClear reports whether no expense falls strictly inside the trailing
// window of the given number of days ending at date.
func windowClear(expenses []*entity.Expense, date time.Time, days int, reason string) (bool, string, error) {
	cutoff := date.Add(-time.Duration(days) * 24 * time.Hour)
	for _, e := range expenses {
		if e.Date.After(cutoff) {
			return false, reason, nil
		}
	}
	return true, "", nil
}

// sameDay reports whether a and b fall on the same calendar day in b's
// location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package rule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// defaultRuleSeed describes one starter rule. Amounts are in minor currency
// units (分).
type defaultRuleSeed struct {
	name           string
	category       string
	frequency      entity.RuleFrequency
	maxAmountCents int64
	description    string
}

// defaultRuleSeeds are the starter rules created for a new user.
var defaultRuleSeeds = []defaultRuleSeed{
	{"一日三餐", "餐饮", entity.FrequencyDaily, 5000, "每日三餐标准餐费"},
	{"日常饮用水", "餐饮", entity.FrequencyDaily, 1000, "每日饮水和饮料"},
	{"夏季衣物", "服饰", entity.FrequencySeasonal, 50000, "夏季服装采购"},
	{"冬季衣物", "服饰", entity.FrequencySeasonal, 80000, "冬季服装采购"},
	{"春秋衣物", "服饰", entity.FrequencySeasonal, 50000, "春秋服装采购"},
	{"鞋类", "服饰", entity.FrequencyYearly, 30000, "年度鞋类采购"},
}

// InitializeDefaultRulesInput represents the input for seeding starter rules.
type InitializeDefaultRulesInput struct {
	UserID uuid.UUID
}

// InitializeDefaultRulesOutput reports the created rules.
type InitializeDefaultRulesOutput struct {
	Rules []*entity.ExpenseRule
}

// InitializeDefaultRulesUseCase seeds the fixed starter rule set for a user.
// Not idempotent; callers invoke it once per user, typically at registration.
type InitializeDefaultRulesUseCase struct {
	ruleRepo adapter.ExpenseRuleRepository
}

// NewInitializeDefaultRulesUseCase creates a new InitializeDefaultRulesUseCase
// instance.
func NewInitializeDefaultRulesUseCase(ruleRepo adapter.ExpenseRuleRepository) *InitializeDefaultRulesUseCase {
	return &InitializeDefaultRulesUseCase{ruleRepo: ruleRepo}
}

// Execute creates the starter rules in seed order.
func (uc *InitializeDefaultRulesUseCase) Execute(ctx context.Context, input InitializeDefaultRulesInput) (*InitializeDefaultRulesOutput, error) {
	created := make([]*entity.ExpenseRule, 0, len(defaultRuleSeeds))
	for _, seed := range defaultRuleSeeds {
		rule := entity.NewExpenseRule(
			input.UserID,
			seed.name,
			seed.category,
			seed.frequency,
			seed.maxAmountCents,
			seed.description,
		)
		if err := uc.ruleRepo.Create(ctx, rule); err != nil {
			return nil, fmt.Errorf("failed to create default rule %q: %w", seed.name, err)
		}
		created = append(created, rule)
	}

	return &InitializeDefaultRulesOutput{Rules: created}, nil
}

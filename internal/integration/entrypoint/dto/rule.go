package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateRuleRequest represents the request body for creating an expense rule.
type CreateRuleRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Category       string `json:"category" binding:"required"`
	Frequency      string `json:"frequency" binding:"required"`
	MaxAmountCents int64  `json:"max_amount_cents" binding:"required"`
	Description    string `json:"description"`
}

// UpdateRuleRequest represents the request body for updating an expense rule.
// Nil fields are left unchanged.
type UpdateRuleRequest struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	Frequency      *string `json:"frequency"`
	MaxAmountCents *int64  `json:"max_amount_cents"`
	Description    *string `json:"description"`
	IsActive       *bool   `json:"is_active"`
}

// EvaluateExpenseRequest represents a prospective expense submitted for rule
// evaluation. Date defaults to now when omitted.
type EvaluateExpenseRequest struct {
	Category    string     `json:"category" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"required"`
	Date        *time.Time `json:"date"`
}

// RuleResponse represents an expense rule in API responses.
type RuleResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Frequency      string    `json:"frequency"`
	MaxAmountCents int64     `json:"max_amount_cents"`
	Description    string    `json:"description,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// RuleListResponse represents a list of expense rules.
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// MatchedRuleResponse identifies the rule that approved an expense.
type MatchedRuleResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MaxAmountCents int64  `json:"max_amount_cents"`
}

// EvaluationResponse represents the verdict of rule evaluation.
type EvaluationResponse struct {
	Approved    bool                 `json:"approved"`
	Reason      string               `json:"reason"`
	MatchedRule *MatchedRuleResponse `json:"matched_rule,omitempty"`
}

// ToRuleResponse converts a domain ExpenseRule entity to a RuleResponse DTO.
func ToRuleResponse(rule *entity.ExpenseRule) RuleResponse {
	return RuleResponse{
		ID:             rule.ID.String(),
		Name:           rule.Name,
		Category:       rule.Category,
		Frequency:      string(rule.Frequency),
		MaxAmountCents: rule.MaxAmountCents,
		Description:    rule.Description,
		IsActive:       rule.IsActive,
		CreatedAt:      rule.CreatedAt,
	}
}

// ToRuleListResponse converts a slice of rules to a list response.
func ToRuleListResponse(rules []*entity.ExpenseRule) RuleListResponse {
	items := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, ToRuleResponse(r))
	}
	return RuleListResponse{Rules: items}
}

// ToEvaluationResponse converts an evaluation verdict to a response DTO.
func ToEvaluationResponse(approved bool, reason string, matched *entity.MatchedRule) EvaluationResponse {
	resp := EvaluationResponse{
		Approved: approved,
		Reason:   reason,
	}
	if matched != nil {
		resp.MatchedRule = &MatchedRuleResponse{
			ID:             matched.ID.String(),
			Name:           matched.Name,
			MaxAmountCents: matched.MaxAmountCents,
		}
	}
	return resp
}

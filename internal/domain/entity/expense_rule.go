// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RuleFrequency is the trailing window within which a rule permits at most
// one qualifying expense (dining under daily is the exception, see the rule
// engine).
type RuleFrequency string

const (
	FrequencyDaily    RuleFrequency = "daily"
	FrequencyWeekly   RuleFrequency = "weekly"
	FrequencyMonthly  RuleFrequency = "monthly"
	FrequencySeasonal RuleFrequency = "seasonal"
	FrequencyYearly   RuleFrequency = "yearly"
)

// ValidRuleFrequency reports whether f is one of the known frequencies.
func ValidRuleFrequency(f RuleFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencySeasonal, FrequencyYearly:
		return true
	}
	return false
}

// ExpenseRule represents a user-configured constraint used to auto-approve
// routine expenses. Rules match expense categories by name. Amounts are in
// minor currency units (分).
type ExpenseRule struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Category       string
	Frequency      RuleFrequency
	MaxAmountCents int64
	Description    string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewExpenseRule creates a new ExpenseRule entity. New rules are active by
// default.
func NewExpenseRule(
	userID uuid.UUID,
	name string,
	category string,
	frequency RuleFrequency,
	maxAmountCents int64,
	description string,
) *ExpenseRule {
	now := time.Now().UTC()

	return &ExpenseRule{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Category:       category,
		Frequency:      frequency,
		MaxAmountCents: maxAmountCents,
		Description:    description,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MatchedRule identifies the rule that approved an expense.
type MatchedRule struct {
	ID             uuid.UUID
	Name           string
	MaxAmountCents int64
}

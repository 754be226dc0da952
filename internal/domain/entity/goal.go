// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the kind of financial goal.
type GoalType string

const (
	GoalTypeSavings       GoalType = "savings"
	GoalTypeSpendingLimit GoalType = "spending_limit"
)

// GoalStatus represents the lifecycle state of a goal. Only active goals
// participate in expense impact analysis.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// Goal represents a savings or spending-limit target in the SpendWise system.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Type          GoalType
	Deadline      *time.Time
	Icon          string
	Color         string
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity with an active status and zero progress.
func NewGoal(
	userID uuid.UUID,
	name string,
	description string,
	targetAmount decimal.Decimal,
	goalType GoalType,
	deadline *time.Time,
	icon string,
	color string,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Type:          goalType,
		Deadline:      deadline,
		Icon:          icon,
		Color:         color,
		Status:        GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Remaining returns the amount still needed to reach the target.
func (g *Goal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// IsActive reports whether the goal participates in impact analysis.
func (g *Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}

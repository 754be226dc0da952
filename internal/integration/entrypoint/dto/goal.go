package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a goal.
// Amounts are decimal yuan strings, e.g. "4999.50".
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	Type         string          `json:"type" binding:"required"`
	Deadline     *time.Time      `json:"deadline"`
	Icon         string          `json:"icon"`
	Color        string          `json:"color"`
}

// UpdateGoalRequest represents the request body for updating a goal. Nil
// fields are left unchanged.
type UpdateGoalRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline"`
	Icon          *string          `json:"icon"`
	Color         *string          `json:"color"`
	Status        *string          `json:"status"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Type          string          `json:"type"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Icon          string          `json:"icon,omitempty"`
	Color         string          `json:"color,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GoalListResponse represents a list of goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Type:          string(goal.Type),
		Deadline:      goal.Deadline,
		Icon:          goal.Icon,
		Color:         goal.Color,
		Status:        string(goal.Status),
		CreatedAt:     goal.CreatedAt,
	}
}

// ToGoalListResponse converts a slice of goals to a list response.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	items := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		items = append(items, ToGoalResponse(g))
	}
	return GoalListResponse{Goals: items}
}

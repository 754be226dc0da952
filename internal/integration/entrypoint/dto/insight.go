package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// GenerateInsightRequest represents the request body for generating advice.
// Context is optional free text folded into the prompt.
type GenerateInsightRequest struct {
	Context string `json:"context"`
}

// InsightResponse represents a stored insight in API responses.
type InsightResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedInsightResponse wraps a freshly generated insight. Cached is true
// when the advice came from the cache without a model call.
type GeneratedInsightResponse struct {
	Insight InsightResponse `json:"insight"`
	Cached  bool            `json:"cached"`
}

// InsightListResponse represents a list of insights.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// ToInsightResponse converts a domain Insight entity to an InsightResponse DTO.
func ToInsightResponse(insight *entity.Insight) InsightResponse {
	return InsightResponse{
		ID:        insight.ID.String(),
		Type:      string(insight.Type),
		Title:     insight.Title,
		Content:   insight.Content,
		IsRead:    insight.IsRead,
		CreatedAt: insight.CreatedAt,
	}
}

// ToInsightListResponse converts a slice of insights to a list response.
func ToInsightListResponse(insights []*entity.Insight) InsightListResponse {
	items := make([]InsightResponse, 0, len(insights))
	for _, i := range insights {
		items = append(items, ToInsightResponse(i))
	}
	return InsightListResponse{Insights: items}
}

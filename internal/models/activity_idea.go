package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/ideas"
)

// ActivityIdea is a generated idea that was saved against a destination.
type ActivityIdea struct {
	ID             uuid.UUID            `json:"id"`
	DestinationID  uuid.UUID            `json:"destination_id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Category       ideas.Category       `json:"category"`
	ActivityType   ideas.ActivityType   `json:"activity_type"`
	DurationHours  float64              `json:"duration"`
	BudgetCategory ideas.BudgetCategory `json:"budget_category"`
	RelevanceScore float64              `json:"relevance_score"`
	CreatedAt      time.Time            `json:"created_at"`
}

func NewActivityIdea(destinationID uuid.UUID, idea ideas.Idea) *ActivityIdea {
	return &ActivityIdea{
		ID:             uuid.New(),
		DestinationID:  destinationID,
		Title:          idea.Title,
		Description:    idea.Description,
		Category:       idea.Category,
		ActivityType:   idea.ActivityType,
		DurationHours:  idea.Duration,
		BudgetCategory: idea.BudgetCategory,
		RelevanceScore: idea.RelevanceScore,
	}
}

func (a *ActivityIdea) Idea() ideas.Idea {
	return ideas.Idea{
		Title:          a.Title,
		Description:    a.Description,
		Category:       a.Category,
		ActivityType:   a.ActivityType,
		Duration:       a.DurationHours,
		BudgetCategory: a.BudgetCategory,
		RelevanceScore: a.RelevanceScore,
	}
}

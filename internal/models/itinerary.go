package models

import (
	"github.com/google/uuid"

	"github.com/withme-travel/withme/internal/ideas"
)

// ItineraryItem is one stop of an itinerary template. Items feed the
// relevance score of generated ideas.
type ItineraryItem struct {
	ID          uuid.UUID `json:"id"`
	TemplateID  uuid.UUID `json:"template_id"`
	Position    int       `json:"position"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func (i ItineraryItem) TemplateItem() ideas.TemplateItem {
	return ideas.TemplateItem{Title: i.Title, Description: i.Description}
}

// TemplateItems converts stored items to the generator's input.
func TemplateItems(items []ItineraryItem) []ideas.TemplateItem {
	out := make([]ideas.TemplateItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.TemplateItem())
	}
	return out
}

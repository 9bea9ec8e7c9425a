// Package ideas turns a destination's free-text description into suggested
// activities for a trip.
//
// The pipeline is: ExtractKeywords, then DetermineCategory and
// DetermineActivityType, then budget and duration estimation, title and
// description synthesis, and finally relevance scoring against itinerary
// template items. Everything is in-memory and allocation is per call, so
// the package-level functions are safe to use from many goroutines.
package ideas

import (
	"sort"
	"strings"
)

// DefaultIdeaCount is the batch size used by callers that do not specify one.
const DefaultIdeaCount = 6

// Idea is a single generated activity suggestion.
type Idea struct {
	Title          string         `json:"title" yaml:"title"`
	Description    string         `json:"description" yaml:"description"`
	Category       Category       `json:"category" yaml:"category"`
	ActivityType   ActivityType   `json:"activity_type" yaml:"activity_type"`
	Duration       float64        `json:"duration" yaml:"duration"`
	BudgetCategory BudgetCategory `json:"budget_category" yaml:"budget_category"`
	RelevanceScore float64        `json:"relevance_score" yaml:"relevance_score"`
}

// Generator produces ideas using its Source for every random choice. A
// Generator is as safe for concurrent use as its Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src, or from DefaultSource
// when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// GenerateIdeas builds count ideas for destination and returns them sorted by
// relevance, highest first. Category and activity type depend only on
// keywords, so every idea in one batch shares them; titles, descriptions and
// durations vary per idea.
func (g *Generator) GenerateIdeas(destination string, keywords []string, items []TemplateItem, count int) []Idea {
	if count <= 0 {
		return []Idea{}
	}
	destination = strings.TrimSpace(destination)

	category := DetermineCategory(keywords)
	activityType := DetermineActivityType(keywords)
	budget := DetermineBudgetCategory(activityType, category)
	relevance := CalculateRelevanceScore(keywords, items)

	result := make([]Idea, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, Idea{
			Title:          g.GenerateTitle(category, keywords, destination),
			Description:    g.GenerateDescription(category, destination),
			Category:       category,
			ActivityType:   activityType,
			Duration:       g.EstimateDuration(activityType, category),
			BudgetCategory: budget,
			RelevanceScore: relevance,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RelevanceScore > result[j].RelevanceScore
	})
	return result
}

// FromDescription extracts keywords from description and generates ideas
// from them.
func (g *Generator) FromDescription(destination, description string, items []TemplateItem, count int) ([]string, []Idea) {
	keywords := ExtractKeywords(description, DefaultMaxKeywords)
	return keywords, g.GenerateIdeas(destination, keywords, items, count)
}

// GenerateActivityIdeas runs GenerateIdeas with the default random source.
func GenerateActivityIdeas(destination string, keywords []string, items []TemplateItem, count int) []Idea {
	return defaultGenerator.GenerateIdeas(destination, keywords, items, count)
}

// EstimateDuration runs Generator.EstimateDuration with the default source.
func EstimateDuration(t ActivityType, c Category) float64 {
	return defaultGenerator.EstimateDuration(t, c)
}

// GenerateActivityTitle runs Generator.GenerateTitle with the default source.
func GenerateActivityTitle(c Category, keywords []string, destination string) string {
	return defaultGenerator.GenerateTitle(c, keywords, destination)
}

// GenerateActivityDescription runs Generator.GenerateDescription with the
// default source.
func GenerateActivityDescription(c Category, destination string) string {
	return defaultGenerator.GenerateDescription(c, destination)
}

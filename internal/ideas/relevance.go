package ideas

import "strings"

const (
	baseRelevance     = 1.0
	maxRelevance      = 10.0
	relevancePerMatch = 0.5
)

// TemplateItem is an itinerary template entry used to bias relevance.
type TemplateItem struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CalculateRelevanceScore starts at 1 and adds 0.5 for every keyword that
// appears in the combined text of items, capped at 10.
func CalculateRelevanceScore(keywords []string, items []TemplateItem) float64 {
	if len(items) == 0 {
		return baseRelevance
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Title)
		b.WriteByte(' ')
		b.WriteString(item.Description)
		b.WriteByte(' ')
	}
	corpus := strings.ToLower(b.String())

	score := baseRelevance
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(corpus, kw) {
			score += relevancePerMatch
		}
	}
	if score > maxRelevance {
		score = maxRelevance
	}
	return score
}

package ideas

import "strings"

// DetermineCategory picks the category whose keyword list overlaps the most
// with keywords. A keyword overlaps a list when it contains, or is contained
// in, any word of the list; each keyword counts at most once per category.
// Ties go to the category declared first, and no overlap at all yields
// CategoryCulture.
func DetermineCategory(keywords []string) Category {
	best := CategoryCulture
	bestScore := 0
	for _, c := range categoryOrder {
		if score := overlapScore(keywords, categoryKeywords[c]); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// DetermineActivityType works like DetermineCategory over the activity type
// lists, defaulting to TypeLandmark.
func DetermineActivityType(keywords []string) ActivityType {
	best := TypeLandmark
	bestScore := 0
	for _, t := range typeOrder {
		if score := overlapScore(keywords, typeKeywords[t]); score > bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

func overlapScore(keywords, mapped []string) int {
	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, word := range mapped {
			if strings.Contains(kw, word) || strings.Contains(word, kw) {
				score++
				break
			}
		}
	}
	return score
}

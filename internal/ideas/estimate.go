package ideas

const (
	defaultDurationHours = 2.0
	minDurationHours     = 0.5
	durationJitter       = 0.25
)

// DetermineBudgetCategory looks the activity type up first, then the
// category, and falls back to BudgetActivities.
func DetermineBudgetCategory(t ActivityType, c Category) BudgetCategory {
	if b, ok := typeBudget[t]; ok {
		return b
	}
	if b, ok := categoryBudget[c]; ok {
		return b
	}
	return BudgetActivities
}

// BaseDuration returns the unjittered duration in hours for t and c.
func BaseDuration(t ActivityType, c Category) float64 {
	if d, ok := typeDuration[t]; ok {
		return d
	}
	if d, ok := categoryDuration[c]; ok {
		return d
	}
	return defaultDurationHours
}

// EstimateDuration returns BaseDuration shifted by a uniform value in
// [-0.25, +0.25] hours, never less than half an hour.
func (g *Generator) EstimateDuration(t ActivityType, c Category) float64 {
	d := BaseDuration(t, c) + (g.src.Float64()*2-1)*durationJitter
	if d < minDurationHours {
		d = minDurationHours
	}
	return d
}

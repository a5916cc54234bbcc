package domain

type PatternType string

const (
	PatternSkippedMeals    PatternType = "skipped_meals"
	PatternLateNightEating PatternType = "late_night_eating"
	PatternHighCaffeine    PatternType = "high_caffeine"
	PatternLowHydration    PatternType = "low_hydration"
	PatternIrregularTiming PatternType = "irregular_timing"
	PatternHighSugar       PatternType = "high_sugar"
)

// HabitPattern is a fresh detection result; nothing about it is persisted.
type HabitPattern struct {
	PatternType    PatternType `json:"pattern_type"`
	FrequencyScore int         `json:"frequency_score"`
	MatchingDays   int         `json:"matching_days"`
	DaysWithData   int         `json:"days_with_data"`
	LastDetected   *string     `json:"last_detected,omitempty"`
}

// Severity bands a frequency score the way clients display it.
func Severity(score int) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "medium"
	case score >= 40:
		return "low"
	default:
		return "negligible"
	}
}

package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

const (
	MaxWindowDays = 366

	highCaffeineMg          = 400.0
	lowHydrationMl          = 2000.0
	highSugarG              = 50.0
	irregularTimingMinutes  = 120
	minTimedDaysForBaseline = 3
)

type HabitDetector struct {
	aggregator *Aggregator
}

func NewHabitDetector(aggregator *Aggregator) *HabitDetector {
	return &HabitDetector{aggregator: aggregator}
}

// windowContext carries facts about the whole window that some per-day
// predicates compare against.
type windowContext struct {
	medianFirstMeal int
}

type habitPredicate struct {
	pattern domain.PatternType
	holds   func(s domain.DailySnapshot, w windowContext) bool
}

var habitPredicates = []habitPredicate{
	{
		pattern: domain.PatternSkippedMeals,
		holds:   func(s domain.DailySnapshot, _ windowContext) bool { return s.MealCount == 0 },
	},
	{
		pattern: domain.PatternLateNightEating,
		holds:   func(s domain.DailySnapshot, _ windowContext) bool { return s.LateMealCount > 0 },
	},
	{
		pattern: domain.PatternHighCaffeine,
		holds:   func(s domain.DailySnapshot, _ windowContext) bool { return s.CaffeineMg > highCaffeineMg },
	},
	{
		pattern: domain.PatternLowHydration,
		holds:   func(s domain.DailySnapshot, _ windowContext) bool { return s.HydrationMl < lowHydrationMl },
	},
	{
		pattern: domain.PatternIrregularTiming,
		holds: func(s domain.DailySnapshot, w windowContext) bool {
			if w.medianFirstMeal < 0 || s.FirstMealMinute < 0 {
				return false
			}
			diff := s.FirstMealMinute - w.medianFirstMeal
			if diff < 0 {
				diff = -diff
			}
			return diff > irregularTimingMinutes
		},
	},
	{
		pattern: domain.PatternHighSugar,
		holds:   func(s domain.DailySnapshot, _ windowContext) bool { return s.SugarG > highSugarG },
	},
}

// Detect scans the window ending at asOf's date. Only days with some logged
// data count towards a score; with none at all the result is empty.
func (d *HabitDetector) Detect(ctx context.Context, userID string, windowDays int, asOf time.Time) ([]domain.HabitPattern, error) {
	if windowDays < 1 || windowDays > MaxWindowDays {
		return nil, domain.ErrInvalidWindow
	}

	snapshots, err := d.aggregator.Aggregate(ctx, userID, domain.TrailingRange(asOf, windowDays))
	if err != nil {
		return nil, err
	}

	return DetectPatterns(snapshots), nil
}

// DetectPatterns evaluates every predicate over the given snapshots.
func DetectPatterns(snapshots map[string]domain.DailySnapshot) []domain.HabitPattern {
	days := make([]domain.DailySnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s.HasData() {
			days = append(days, s)
		}
	}
	if len(days) == 0 {
		return []domain.HabitPattern{}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	w := windowContext{medianFirstMeal: medianFirstMeal(days)}

	patterns := make([]domain.HabitPattern, 0, len(habitPredicates))
	for _, p := range habitPredicates {
		hp := domain.HabitPattern{
			PatternType:  p.pattern,
			DaysWithData: len(days),
		}
		for _, s := range days {
			if p.holds(s, w) {
				hp.MatchingDays++
				date := s.Date
				hp.LastDetected = &date
			}
		}
		hp.FrequencyScore = frequencyScore(hp.MatchingDays, hp.DaysWithData)
		patterns = append(patterns, hp)
	}
	return patterns
}

func frequencyScore(matching, total int) int {
	if total <= 0 {
		return 0
	}
	score := int(math.Round(float64(matching) / float64(total) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// medianFirstMeal returns -1 when too few days have a timed meal to form a baseline.
func medianFirstMeal(days []domain.DailySnapshot) int {
	var minutes []int
	for _, s := range days {
		if s.FirstMealMinute >= 0 {
			minutes = append(minutes, s.FirstMealMinute)
		}
	}
	if len(minutes) < minTimedDaysForBaseline {
		return -1
	}
	sort.Ints(minutes)
	mid := len(minutes) / 2
	if len(minutes)%2 == 0 {
		return (minutes[mid-1] + minutes[mid]) / 2
	}
	return minutes[mid]
}

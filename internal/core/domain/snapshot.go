package domain

import (
	"context"
	"time"
)

const (
	EveningStartMinute = 18 * 60
	LateNightMinute    = 20 * 60
)

// DailySnapshot is the reduced total of one user's entries for one log date.
// It is derived data: recomputing it from the same entries always yields the
// same value.
type DailySnapshot struct {
	Date string `json:"date"`

	MealCount       int     `json:"meal_count"`
	Calories        float64 `json:"calories"`
	ProteinG        float64 `json:"protein_g"`
	CarbsG          float64 `json:"carbs_g"`
	FatG            float64 `json:"fat_g"`
	FiberG          float64 `json:"fiber_g"`
	SugarG          float64 `json:"sugar_g"`
	EveningCalories float64 `json:"evening_calories"`
	LateMealCount   int     `json:"late_meal_count"`
	FirstMealMinute int     `json:"first_meal_minute"`

	HydrationCount int     `json:"hydration_count"`
	HydrationMl    float64 `json:"hydration_ml"`

	CaffeineCount int     `json:"caffeine_count"`
	CaffeineMg    float64 `json:"caffeine_mg"`

	WorkoutCount  int     `json:"workout_count"`
	WorkoutVolume float64 `json:"workout_volume"`

	SleepCount int     `json:"sleep_count"`
	SleepHours float64 `json:"sleep_hours"`

	BodyWeightCount   int     `json:"body_weight_count"`
	BodyWeightTotalKg float64 `json:"body_weight_total_kg"`
}

func NewDailySnapshot(date string) DailySnapshot {
	return DailySnapshot{Date: date, FirstMealMinute: -1}
}

// Add folds one entry into the snapshot. Entries dated on another day are the
// caller's responsibility to filter out.
func (s *DailySnapshot) Add(e *LogEntry) {
	switch e.Kind {
	case KindMeal:
		s.MealCount++
		s.Calories += e.Calories
		s.ProteinG += e.ProteinG
		s.CarbsG += e.CarbsG
		s.FatG += e.FatG
		s.FiberG += e.FiberG
		s.SugarG += e.SugarG
		if m := e.MinuteOfDay(); m >= 0 {
			if m >= EveningStartMinute {
				s.EveningCalories += e.Calories
			}
			if m > LateNightMinute {
				s.LateMealCount++
			}
			if s.FirstMealMinute < 0 || m < s.FirstMealMinute {
				s.FirstMealMinute = m
			}
		}
	case KindHydration:
		s.HydrationCount++
		s.HydrationMl += e.VolumeMl
	case KindCaffeine:
		s.CaffeineCount++
		s.CaffeineMg += e.AmountMg
	case KindWorkout:
		s.WorkoutCount++
		s.WorkoutVolume += e.TotalVolume
	case KindSleep:
		s.SleepCount++
		s.SleepHours += e.DurationHours
	case KindBodyWeight:
		s.BodyWeightCount++
		s.BodyWeightTotalKg += e.WeightKg
	}
}

// Merge returns the field-wise combination of two snapshots of the same date.
func (s DailySnapshot) Merge(o DailySnapshot) DailySnapshot {
	out := s
	out.MealCount += o.MealCount
	out.Calories += o.Calories
	out.ProteinG += o.ProteinG
	out.CarbsG += o.CarbsG
	out.FatG += o.FatG
	out.FiberG += o.FiberG
	out.SugarG += o.SugarG
	out.EveningCalories += o.EveningCalories
	out.LateMealCount += o.LateMealCount
	if o.FirstMealMinute >= 0 && (out.FirstMealMinute < 0 || o.FirstMealMinute < out.FirstMealMinute) {
		out.FirstMealMinute = o.FirstMealMinute
	}
	out.HydrationCount += o.HydrationCount
	out.HydrationMl += o.HydrationMl
	out.CaffeineCount += o.CaffeineCount
	out.CaffeineMg += o.CaffeineMg
	out.WorkoutCount += o.WorkoutCount
	out.WorkoutVolume += o.WorkoutVolume
	out.SleepCount += o.SleepCount
	out.SleepHours += o.SleepHours
	out.BodyWeightCount += o.BodyWeightCount
	out.BodyWeightTotalKg += o.BodyWeightTotalKg
	return out
}

// HasData reports whether any entry of any kind contributed to the snapshot.
func (s DailySnapshot) HasData() bool {
	return s.MealCount+s.HydrationCount+s.CaffeineCount+s.WorkoutCount+s.SleepCount+s.BodyWeightCount > 0
}

func (s DailySnapshot) BodyWeightKg() float64 {
	if s.BodyWeightCount == 0 {
		return 0
	}
	return s.BodyWeightTotalKg / float64(s.BodyWeightCount)
}

// DateRange is an inclusive range of log dates. A zero or inverted range is empty.
type DateRange struct {
	From string
	To   string
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: from.Format(DateLayout), To: to.Format(DateLayout)}
}

// TrailingRange returns the window of days ending at asOf's calendar date.
func TrailingRange(asOf time.Time, days int) DateRange {
	if days <= 0 {
		return DateRange{}
	}
	return NewDateRange(asOf.AddDate(0, 0, -(days-1)), asOf)
}

func (r DateRange) IsEmpty() bool {
	if !IsValidDate(r.From) || !IsValidDate(r.To) {
		return true
	}
	return r.From > r.To
}

// Dates enumerates every date of the range in ascending order. Arithmetic is
// done on a UTC calendar so the strings are never shifted by a timezone.
func (r DateRange) Dates() []string {
	if r.IsEmpty() {
		return nil
	}
	start, _ := time.Parse(DateLayout, r.From)
	end, _ := time.Parse(DateLayout, r.To)
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// SnapshotCache is a read-through cache of snapshots. It is never a source of
// truth: a write to any entry of a date must invalidate that date.
type SnapshotCache interface {
	// GetSnapshots returns the cached snapshots among dates and the dates that missed.
	GetSnapshots(ctx context.Context, userID string, dates []string) (map[string]DailySnapshot, []string, error)
	// Versions returns the invalidation counter of each date. Read it before
	// the store so SetSnapshots can drop fills that an invalidation overtook.
	Versions(ctx context.Context, userID string, dates []string) (map[string]int64, error)
	// SetSnapshots stores the snapshots whose date is still at the version in
	// versions. Dates absent from versions are treated as version 0.
	SetSnapshots(ctx context.Context, userID string, snapshots []DailySnapshot, versions map[string]int64) error
	// Invalidate drops the cached date and bumps its version.
	Invalidate(ctx context.Context, userID string, date string) error
}

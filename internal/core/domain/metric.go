package domain

import "math"

type Metric string

const (
	MetricSleepDuration    Metric = "sleep_duration"
	MetricDailyCalories    Metric = "daily_calories"
	MetricDailyHydration   Metric = "daily_hydration"
	MetricDailyProtein     Metric = "daily_protein"
	MetricEveningCalories  Metric = "evening_calories"
	MetricSugarConsumption Metric = "sugar_consumption"
	MetricBodyWeight       Metric = "body_weight"
	MetricDailyCaffeine    Metric = "daily_caffeine"
)

type metricSource struct {
	defined func(DailySnapshot) bool
	value   func(DailySnapshot) float64
}

func hasMeals(s DailySnapshot) bool { return s.MealCount > 0 }

var metricSources = map[Metric]metricSource{
	MetricSleepDuration: {
		defined: func(s DailySnapshot) bool { return s.SleepCount > 0 },
		value:   func(s DailySnapshot) float64 { return s.SleepHours },
	},
	MetricDailyCalories: {
		defined: hasMeals,
		value:   func(s DailySnapshot) float64 { return s.Calories },
	},
	MetricDailyHydration: {
		defined: func(s DailySnapshot) bool { return s.HydrationCount > 0 },
		value:   func(s DailySnapshot) float64 { return s.HydrationMl },
	},
	MetricDailyProtein: {
		defined: hasMeals,
		value:   func(s DailySnapshot) float64 { return s.ProteinG },
	},
	MetricEveningCalories: {
		defined: hasMeals,
		value:   func(s DailySnapshot) float64 { return s.EveningCalories },
	},
	MetricSugarConsumption: {
		defined: hasMeals,
		value:   func(s DailySnapshot) float64 { return s.SugarG },
	},
	MetricBodyWeight: {
		defined: func(s DailySnapshot) bool { return s.BodyWeightCount > 0 },
		value:   DailySnapshot.BodyWeightKg,
	},
	MetricDailyCaffeine: {
		defined: func(s DailySnapshot) bool { return s.CaffeineCount > 0 },
		value:   func(s DailySnapshot) float64 { return s.CaffeineMg },
	},
}

// AllMetrics lists the metric names accepted by the correlation engine.
var AllMetrics = []Metric{
	MetricSleepDuration, MetricDailyCalories, MetricDailyHydration, MetricDailyProtein,
	MetricEveningCalories, MetricSugarConsumption, MetricBodyWeight, MetricDailyCaffeine,
}

func ParseMetric(name string) (Metric, error) {
	m := Metric(name)
	if _, ok := metricSources[m]; !ok {
		return "", &InvalidMetricError{Name: name}
	}
	return m, nil
}

// Value returns the metric's value on the snapshot and whether it is defined
// there. A metric is defined only when its source kind was logged that day.
func (m Metric) Value(s DailySnapshot) (float64, bool) {
	src, ok := metricSources[m]
	if !ok || !src.defined(s) {
		return 0, false
	}
	return src.value(s), true
}

// MetricCorrelation is recomputed per query and never stored.
type MetricCorrelation struct {
	PrimaryMetric          Metric  `json:"primary_metric"`
	SecondaryMetric        Metric  `json:"secondary_metric"`
	CorrelationCoefficient float64 `json:"correlation_coefficient"`
	SampleSize             int     `json:"sample_size"`
	TimeWindowDays         int     `json:"time_window_days"`
	DegenerateSeries       bool    `json:"degenerate_series,omitempty"`
}

// CorrelationStrength bands |r| for display.
func CorrelationStrength(r float64) string {
	a := math.Abs(r)
	switch {
	case a < 0.2:
		return "very weak"
	case a < 0.4:
		return "weak"
	case a < 0.6:
		return "moderate"
	case a < 0.8:
		return "strong"
	default:
		return "very strong"
	}
}

package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

const MinCorrelationSamples = 3

// DefaultMetricPairs are the pairs shown on the correlations tab.
var DefaultMetricPairs = [][2]domain.Metric{
	{domain.MetricSleepDuration, domain.MetricDailyCalories},
	{domain.MetricDailyCaffeine, domain.MetricSleepDuration},
	{domain.MetricEveningCalories, domain.MetricSleepDuration},
	{domain.MetricSugarConsumption, domain.MetricDailyCalories},
	{domain.MetricDailyProtein, domain.MetricBodyWeight},
	{domain.MetricDailyCalories, domain.MetricBodyWeight},
	{domain.MetricDailyHydration, domain.MetricDailyCaffeine},
}

type CorrelationEngine struct {
	aggregator *Aggregator
}

func NewCorrelationEngine(aggregator *Aggregator) *CorrelationEngine {
	return &CorrelationEngine{aggregator: aggregator}
}

// Correlate validates both metric names before reading anything, then
// computes Pearson's r over the dates in the window where both are defined.
func (e *CorrelationEngine) Correlate(ctx context.Context, userID, metricA, metricB string, windowDays int, asOf time.Time) (*domain.MetricCorrelation, error) {
	a, err := domain.ParseMetric(metricA)
	if err != nil {
		return nil, err
	}
	b, err := domain.ParseMetric(metricB)
	if err != nil {
		return nil, err
	}
	if windowDays < 1 || windowDays > MaxWindowDays {
		return nil, domain.ErrInvalidWindow
	}

	r := domain.TrailingRange(asOf, windowDays)
	snapshots, err := e.aggregator.Aggregate(ctx, userID, r)
	if err != nil {
		return nil, err
	}

	return CorrelateSnapshots(snapshots, r, a, b, windowDays)
}

// CorrelateAll computes the default pairs, leaving out those without enough data.
func (e *CorrelationEngine) CorrelateAll(ctx context.Context, userID string, windowDays int, asOf time.Time) ([]domain.MetricCorrelation, error) {
	if windowDays < 1 || windowDays > MaxWindowDays {
		return nil, domain.ErrInvalidWindow
	}

	r := domain.TrailingRange(asOf, windowDays)
	snapshots, err := e.aggregator.Aggregate(ctx, userID, r)
	if err != nil {
		return nil, err
	}

	out := make([]domain.MetricCorrelation, 0, len(DefaultMetricPairs))
	for _, pair := range DefaultMetricPairs {
		c, err := CorrelateSnapshots(snapshots, r, pair[0], pair[1], windowDays)
		if err != nil {
			var insufficient *domain.InsufficientDataError
			if errors.As(err, &insufficient) {
				continue
			}
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// CorrelateSnapshots aligns the two metric series date by date.
func CorrelateSnapshots(snapshots map[string]domain.DailySnapshot, r domain.DateRange, a, b domain.Metric, windowDays int) (*domain.MetricCorrelation, error) {
	var xs, ys []float64
	for _, date := range r.Dates() {
		s, ok := snapshots[date]
		if !ok {
			continue
		}
		x, okA := a.Value(s)
		y, okB := b.Value(s)
		if okA && okB {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	if len(xs) < MinCorrelationSamples {
		return nil, &domain.InsufficientDataError{SampleSize: len(xs), Required: MinCorrelationSamples}
	}

	coef, degenerate := Pearson(xs, ys)
	return &domain.MetricCorrelation{
		PrimaryMetric:          a,
		SecondaryMetric:        b,
		CorrelationCoefficient: coef,
		SampleSize:             len(xs),
		TimeWindowDays:         windowDays,
		DegenerateSeries:       degenerate,
	}, nil
}

// Pearson returns the product-moment correlation of two equal-length series.
// A series with zero variance yields (0, true) instead of NaN.
func Pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0, true
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return 0, true
	}

	r := num / math.Sqrt(denomX*denomY)
	return math.Max(-1, math.Min(1, r)), false
}

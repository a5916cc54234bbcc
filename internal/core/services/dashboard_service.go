package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

const DefaultDashboardWindowDays = 30

type Dashboard struct {
	AsOf         string                     `json:"as_of"`
	WindowDays   int                        `json:"window_days"`
	Insights     []domain.Insight           `json:"insights"`
	Habits       []domain.HabitPattern      `json:"habits"`
	Correlations []domain.MetricCorrelation `json:"correlations"`
	Warnings     []string                   `json:"warnings,omitempty"`
}

type DashboardService struct {
	insights     *InsightGenerator
	habits       *HabitDetector
	correlations *CorrelationEngine
}

func NewDashboardService(insights *InsightGenerator, habits *HabitDetector, correlations *CorrelationEngine) *DashboardService {
	return &DashboardService{
		insights:     insights,
		habits:       habits,
		correlations: correlations,
	}
}

// Build runs the three analyses concurrently. Partial-data failures in habits
// or correlations become warnings; anything else fails the whole dashboard.
func (s *DashboardService) Build(ctx context.Context, userID string, windowDays int, asOf time.Time) (*Dashboard, error) {
	if windowDays < 1 || windowDays > MaxWindowDays {
		return nil, domain.ErrInvalidWindow
	}

	d := &Dashboard{
		AsOf:         asOf.Format(domain.DateLayout),
		WindowDays:   windowDays,
		Insights:     []domain.Insight{},
		Habits:       []domain.HabitPattern{},
		Correlations: []domain.MetricCorrelation{},
	}

	var habitWarn, corrWarn string

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		insights, err := s.insights.Generate(gctx, userID, asOf)
		if err != nil {
			return err
		}
		d.Insights = insights
		return nil
	})

	g.Go(func() error {
		habits, err := s.habits.Detect(gctx, userID, windowDays, asOf)
		if err != nil {
			var unavailable *domain.DataUnavailableError
			if errors.As(err, &unavailable) {
				habitWarn = "habits: " + err.Error()
				return nil
			}
			return err
		}
		d.Habits = habits
		return nil
	})

	g.Go(func() error {
		correlations, err := s.correlations.CorrelateAll(gctx, userID, windowDays, asOf)
		if err != nil {
			var unavailable *domain.DataUnavailableError
			if errors.As(err, &unavailable) {
				corrWarn = "correlations: " + err.Error()
				return nil
			}
			return err
		}
		d.Correlations = correlations
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, w := range []string{habitWarn, corrWarn} {
		if w != "" {
			d.Warnings = append(d.Warnings, w)
		}
	}

	return d, nil
}

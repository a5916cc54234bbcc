package services

import (
	"context"
	"time"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

const (
	calorieTolerance  = 0.10
	maxStatsRangeDays = MaxWindowDays
)

type StatsService struct {
	aggregator *Aggregator
	goals      GoalResolver
}

func NewStatsService(aggregator *Aggregator, goals GoalResolver) *StatsService {
	return &StatsService{
		aggregator: aggregator,
		goals:      goals,
	}
}

// GetWeeklyStats summarises a date range. Averages are taken over days with at
// least one meal, and a day is within goal when its calories land inside the
// tolerance band around the calorie target.
func (s *StatsService) GetWeeklyStats(ctx context.Context, input domain.StatsInput) (*domain.WeeklyStats, error) {
	startDate, err := time.Parse(domain.DateLayout, input.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	endDate, err := time.Parse(domain.DateLayout, input.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	if endDate.Before(startDate) || endDate.Sub(startDate) >= maxStatsRangeDays*24*time.Hour {
		return nil, domain.ErrInvalidDateRange
	}

	r := domain.NewDateRange(startDate, endDate)
	snapshots, err := s.aggregator.Aggregate(ctx, input.UserID, r)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.Resolve(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	dates := r.Dates()
	stats := &domain.WeeklyStats{
		StartDate:     r.From,
		EndDate:       r.To,
		Goals:         goals,
		DailyProgress: make([]domain.DayProgress, 0, len(dates)),
	}

	calorieGoal := goals[domain.GoalDailyCalories]

	for _, date := range dates {
		snap, ok := snapshots[date]
		if !ok {
			snap = domain.NewDailySnapshot(date)
		}

		stats.DailyProgress = append(stats.DailyProgress, domain.DayProgress{
			Date:        date,
			Calories:    snap.Calories,
			ProteinG:    snap.ProteinG,
			HydrationMl: snap.HydrationMl,
			MealCount:   snap.MealCount,
		})

		stats.TotalHydration += snap.HydrationMl
		if snap.MealCount == 0 {
			continue
		}

		stats.DaysLogged++
		stats.TotalCalories += snap.Calories
		stats.TotalProteinG += snap.ProteinG
		stats.TotalCarbsG += snap.CarbsG
		stats.TotalFatG += snap.FatG

		if withinTolerance(snap.Calories, calorieGoal, calorieTolerance) {
			stats.WithinGoalDays++
		}
	}

	if stats.DaysLogged > 0 {
		n := float64(stats.DaysLogged)
		stats.AvgCalories = stats.TotalCalories / n
		stats.AvgProteinG = stats.TotalProteinG / n
		stats.AvgCarbsG = stats.TotalCarbsG / n
		stats.AvgFatG = stats.TotalFatG / n
		stats.AdherenceRate = float64(stats.WithinGoalDays) / n * 100
	}
	if len(dates) > 0 {
		stats.AvgHydration = stats.TotalHydration / float64(len(dates))
	}

	return stats, nil
}

func withinTolerance(actual, target, tolerance float64) bool {
	if target <= 0 {
		return actual == 0
	}
	return actual >= target*(1-tolerance) && actual <= target*(1+tolerance)
}

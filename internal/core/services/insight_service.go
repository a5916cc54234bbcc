package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

const (
	insightHistoryDays = 7

	nearGoalProgress       = 90.0
	goodPaceProgress       = 75.0
	aboveAverageFactor     = 1.2
	proteinLowProgress     = 50.0
	proteinStrongProgress  = 80.0
	hydrationReminderMl    = 1500.0
	averageProteinFraction = 0.8
)

type GoalResolver interface {
	Resolve(ctx context.Context, userID string) (domain.GoalTargets, error)
}

// InsightGenerator turns today's snapshot, the trailing week and the user's
// goals into an ordered list of recommendations.
type InsightGenerator struct {
	aggregator *Aggregator
	goals      GoalResolver
}

func NewInsightGenerator(aggregator *Aggregator, goals GoalResolver) *InsightGenerator {
	return &InsightGenerator{
		aggregator: aggregator,
		goals:      goals,
	}
}

type dailyAverages struct {
	Calories    float64
	ProteinG    float64
	HydrationMl float64
	Days        int
}

type ruleInput struct {
	asOf               time.Time
	today              domain.DailySnapshot
	average            dailyAverages
	goals              domain.GoalTargets
	hydrationAvailable bool
}

type insightRule func(in ruleInput) *domain.Insight

// Rules specific to today, evaluated in order; several may fire.
var todayRules = []insightRule{
	calorieProgressRule,
	calorieTrendRule,
	proteinProgressRule,
	mealTimingRule,
	hydrationRule,
}

// Rules only consulted when no today-specific rule fired.
var fallbackRules = []insightRule{
	noMealsRule,
	averageProteinRule,
}

// Generate evaluates the rule set as of the given instant. asOf decides which
// log date is "today" and which hour the timing rules see.
func (g *InsightGenerator) Generate(ctx context.Context, userID string, asOf time.Time) ([]domain.Insight, error) {
	today := asOf.Format(domain.DateLayout)

	snapshots, err := g.aggregator.Aggregate(ctx, userID, domain.TrailingRange(asOf, insightHistoryDays+1))
	hydrationAvailable := true
	if err != nil {
		var unavailable *domain.DataUnavailableError
		if !errors.As(err, &unavailable) || unavailable.Affects(domain.KindMeal) {
			return nil, err
		}
		hydrationAvailable = !unavailable.Affects(domain.KindHydration)
		log.Printf("[INSIGHTS] Continuing with partial data for user %s: %v", userID, err)
	}

	goals, err := g.goals.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	todaySnap, ok := snapshots[today]
	if !ok {
		todaySnap = domain.NewDailySnapshot(today)
	}

	in := ruleInput{
		asOf:               asOf,
		today:              todaySnap,
		average:            trailingAverages(snapshots, todaySnap),
		goals:              goals,
		hydrationAvailable: hydrationAvailable,
	}

	insights := evaluate(todayRules, in)
	if len(insights) == 0 {
		insights = evaluate(fallbackRules, in)
	}

	return insights, nil
}

func evaluate(rules []insightRule, in ruleInput) []domain.Insight {
	insights := []domain.Insight{}
	seen := make(map[string]bool)
	for _, rule := range rules {
		ins := rule(in)
		if ins == nil || seen[ins.ID] {
			continue
		}
		seen[ins.ID] = true
		ins.CreatedAt = in.asOf
		insights = append(insights, *ins)
	}
	return insights
}

// trailingAverages averages the days before today that have at least one meal.
// Without such days the averages equal today's values.
func trailingAverages(snapshots map[string]domain.DailySnapshot, today domain.DailySnapshot) dailyAverages {
	var avg dailyAverages
	for date, s := range snapshots {
		if date >= today.Date || s.MealCount == 0 {
			continue
		}
		avg.Calories += s.Calories
		avg.ProteinG += s.ProteinG
		avg.HydrationMl += s.HydrationMl
		avg.Days++
	}
	if avg.Days == 0 {
		return dailyAverages{
			Calories:    today.Calories,
			ProteinG:    today.ProteinG,
			HydrationMl: today.HydrationMl,
		}
	}
	n := float64(avg.Days)
	avg.Calories /= n
	avg.ProteinG /= n
	avg.HydrationMl /= n
	return avg
}

func percentOf(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return value / target * 100
}

func calorieProgressRule(in ruleInput) *domain.Insight {
	if in.today.Calories <= 0 {
		return nil
	}
	goal := in.goals[domain.GoalDailyCalories]
	progress := percentOf(in.today.Calories, goal)
	data := map[string]float64{"calories": in.today.Calories, "goal": goal, "progress": progress}

	switch {
	case progress >= nearGoalProgress:
		return &domain.Insight{
			ID:             "calories_near_goal",
			Priority:       domain.PriorityHigh,
			Title:          "Close to your calorie goal",
			Message:        fmt.Sprintf("You've logged %.0f of %.0f kcal today (%.0f%% of your goal).", in.today.Calories, goal, progress),
			Recommendation: "Keep any remaining meals light and focused on protein and vegetables.",
			Data:           data,
		}
	case progress >= goodPaceProgress:
		return &domain.Insight{
			ID:             "calories_good_pace",
			Priority:       domain.PriorityLow,
			Title:          "Good calorie pace",
			Message:        fmt.Sprintf("You're at %.0f%% of your %.0f kcal goal.", progress, goal),
			Recommendation: "A balanced final meal will land you right on target.",
			Data:           data,
		}
	}
	return nil
}

// calorieTrendRule compares today against the trailing average independently
// of the progress bands, so a day over goal can still be flagged as unusual.
func calorieTrendRule(in ruleInput) *domain.Insight {
	if in.today.Calories <= 0 || in.average.Calories <= 0 {
		return nil
	}
	if in.today.Calories <= in.average.Calories*aboveAverageFactor {
		return nil
	}
	return &domain.Insight{
		ID:             "calories_above_average",
		Priority:       domain.PriorityMedium,
		Title:          "Above your usual intake",
		Message:        fmt.Sprintf("Today's %.0f kcal is well above your 7-day average of %.0f kcal.", in.today.Calories, in.average.Calories),
		Recommendation: "Check whether today's portions or snacks were larger than usual.",
		Data: map[string]float64{
			"calories":         in.today.Calories,
			"average_calories": in.average.Calories,
			"ratio":            in.today.Calories / in.average.Calories,
		},
	}
}

// proteinProgressRule leaves the 50-80% band silent.
func proteinProgressRule(in ruleInput) *domain.Insight {
	if in.today.ProteinG <= 0 {
		return nil
	}
	goal := in.goals[domain.GoalProtein]
	progress := percentOf(in.today.ProteinG, goal)
	data := map[string]float64{"protein_g": in.today.ProteinG, "goal": goal, "progress": progress}

	switch {
	case progress < proteinLowProgress:
		return &domain.Insight{
			ID:             "protein_low",
			Priority:       domain.PriorityHigh,
			Title:          "Protein is running low",
			Message:        fmt.Sprintf("You've had %.0fg of your %.0fg protein target (%.0f%%).", in.today.ProteinG, goal, progress),
			Recommendation: "Add a lean protein source such as eggs, yogurt, fish or legumes to your next meal.",
			Data:           data,
		}
	case progress >= proteinStrongProgress:
		return &domain.Insight{
			ID:             "protein_strong",
			Priority:       domain.PriorityLow,
			Title:          "Strong protein intake",
			Message:        fmt.Sprintf("You're at %.0f%% of your protein target.", progress),
			Recommendation: "Keep it up; spreading protein across meals helps recovery.",
			Data:           data,
		}
	}
	return nil
}

func mealTimingRule(in ruleInput) *domain.Insight {
	hour := in.asOf.Hour()
	meals := float64(in.today.MealCount)

	switch {
	case hour >= 12 && hour <= 14 && in.today.MealCount == 0:
		return &domain.Insight{
			ID:             "missed_lunch",
			Priority:       domain.PriorityHigh,
			Title:          "No meals logged yet",
			Message:        "It's lunchtime and nothing has been logged today.",
			Recommendation: "Have a balanced lunch to keep energy steady through the afternoon.",
			Data:           map[string]float64{"hour": float64(hour), "meal_count": meals},
		}
	case hour >= 18 && hour <= 20 && in.today.MealCount < 2:
		return &domain.Insight{
			ID:             "dinner_time",
			Priority:       domain.PriorityMedium,
			Title:          "Dinner time",
			Message:        fmt.Sprintf("Only %.0f meal(s) logged so far today.", meals),
			Recommendation: "Plan a complete dinner to cover the rest of your targets.",
			Data:           map[string]float64{"hour": float64(hour), "meal_count": meals},
		}
	}
	return nil
}

func hydrationRule(in ruleInput) *domain.Insight {
	if !in.hydrationAvailable || in.today.MealCount == 0 || in.today.HydrationMl >= hydrationReminderMl {
		return nil
	}
	return &domain.Insight{
		ID:             "hydration_reminder",
		Priority:       domain.PriorityMedium,
		Title:          "Remember to hydrate",
		Message:        fmt.Sprintf("You've logged %.0f ml of water today.", in.today.HydrationMl),
		Recommendation: "Drink a glass of water with each meal.",
		Data:           map[string]float64{"hydration_ml": in.today.HydrationMl, "threshold_ml": hydrationReminderMl},
	}
}

func noMealsRule(in ruleInput) *domain.Insight {
	if in.today.MealCount > 0 {
		return nil
	}
	return &domain.Insight{
		ID:             "no_meals_today",
		Priority:       domain.PriorityHigh,
		Title:          "Start logging today",
		Message:        "No meals have been logged today.",
		Recommendation: "Log your meals as you go to get personalised feedback.",
	}
}

// averageProteinRule only applies once something has been logged today;
// noMealsRule covers the empty day.
func averageProteinRule(in ruleInput) *domain.Insight {
	goal := in.goals[domain.GoalProtein]
	if in.today.MealCount == 0 || goal <= 0 || in.average.ProteinG >= goal*averageProteinFraction {
		return nil
	}
	return &domain.Insight{
		ID:             "protein_average_low",
		Priority:       domain.PriorityMedium,
		Title:          "Protein below target this week",
		Message:        fmt.Sprintf("Your average protein is %.0fg, under 80%% of your %.0fg target.", in.average.ProteinG, goal),
		Recommendation: "Build each meal around a protein source.",
		Data:           map[string]float64{"average_protein_g": in.average.ProteinG, "goal": goal},
	}
}

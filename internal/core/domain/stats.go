package domain

type WeeklyStats struct {
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	DaysLogged     int           `json:"days_logged"`
	TotalCalories  float64       `json:"total_calories"`
	TotalProteinG  float64       `json:"total_protein_g"`
	TotalCarbsG    float64       `json:"total_carbs_g"`
	TotalFatG      float64       `json:"total_fat_g"`
	TotalHydration float64       `json:"total_hydration_ml"`
	AvgCalories    float64       `json:"avg_calories_per_day"`
	AvgProteinG    float64       `json:"avg_protein_g_per_day"`
	AvgCarbsG      float64       `json:"avg_carbs_g_per_day"`
	AvgFatG        float64       `json:"avg_fat_g_per_day"`
	AvgHydration   float64       `json:"avg_hydration_ml_per_day"`
	WithinGoalDays int           `json:"within_goal_days"`
	AdherenceRate  float64       `json:"calorie_adherence_rate"`
	Goals          GoalTargets   `json:"goals"`
	DailyProgress  []DayProgress `json:"daily_progress"`
}

type DayProgress struct {
	Date        string  `json:"date"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	HydrationMl float64 `json:"hydration_ml"`
	MealCount   int     `json:"meal_count"`
}

type StatsInput struct {
	UserID    string
	StartDate string
	EndDate   string
}

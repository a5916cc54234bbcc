package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidGoalType  = errors.New("invalid goal type (must be daily_calories, protein_target, carb_target or fat_target)")
	ErrInvalidGoalValue = errors.New("goal target must be greater than zero")
)

type GoalType string

const (
	GoalDailyCalories GoalType = "daily_calories"
	GoalProtein       GoalType = "protein_target"
	GoalCarbs         GoalType = "carb_target"
	GoalFat           GoalType = "fat_target"
)

var AllGoalTypes = []GoalType{GoalDailyCalories, GoalProtein, GoalCarbs, GoalFat}

// DefaultGoals apply to any goal type the user never set.
var DefaultGoals = GoalTargets{
	GoalDailyCalories: 2200,
	GoalProtein:       150,
	GoalCarbs:         250,
	GoalFat:           70,
}

func (t GoalType) Valid() bool {
	_, ok := DefaultGoals[t]
	return ok
}

// Goal is the single active target of one type for one user.
type Goal struct {
	UserID      string    `json:"user_id" db:"user_id"`
	Type        GoalType  `json:"goal_type" db:"goal_type"`
	TargetValue float64   `json:"target_value" db:"target_value"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewGoal(userID string, goalType GoalType, target float64) (*Goal, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if !goalType.Valid() {
		return nil, ErrInvalidGoalType
	}
	if target <= 0 {
		return nil, ErrInvalidGoalValue
	}
	return &Goal{
		UserID:      userID,
		Type:        goalType,
		TargetValue: target,
		UpdatedAt:   time.Now().UTC(),
	}, nil
}

// GoalTargets always carries every goal type once resolved.
type GoalTargets map[GoalType]float64

type GoalRepository interface {
	// Upsert replaces the user's active goal of the same type, or creates it.
	Upsert(ctx context.Context, goal *Goal) error
	// ListActive returns the user's active goals, at most one per type.
	ListActive(ctx context.Context, userID string) ([]*Goal, error)
}

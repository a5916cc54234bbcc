package services

import (
	"context"
	"fmt"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

type SetGoalInput struct {
	UserID      string
	Type        string
	TargetValue float64
}

// Resolve returns the active target of every goal type, falling back to the
// defaults for types the user never set.
func (s *GoalService) Resolve(ctx context.Context, userID string) (domain.GoalTargets, error) {
	targets := make(domain.GoalTargets, len(domain.DefaultGoals))
	for t, v := range domain.DefaultGoals {
		targets[t] = v
	}

	goals, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal service: list goals: %w", err)
	}

	for _, g := range goals {
		if g.Type.Valid() && g.TargetValue > 0 {
			targets[g.Type] = g.TargetValue
		}
	}

	return targets, nil
}

func (s *GoalService) SetGoal(ctx context.Context, input SetGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.UserID, domain.GoalType(input.Type), input.TargetValue)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

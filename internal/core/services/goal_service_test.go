package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

func TestGoalService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: New user gets all four defaults", func(t *testing.T) {
		repo := new(MockGoalRepo)
		repo.On("ListActive", ctx, "new-user").Return([]*domain.Goal{}, nil)

		targets, err := services.NewGoalService(repo).Resolve(ctx, "new-user")
		require.NoError(t, err)

		assert.Len(t, targets, 4)
		assert.Equal(t, 2200.0, targets[domain.GoalDailyCalories])
		assert.Equal(t, 150.0, targets[domain.GoalProtein])
		assert.Equal(t, 250.0, targets[domain.GoalCarbs])
		assert.Equal(t, 70.0, targets[domain.GoalFat])
		repo.AssertExpectations(t)
	})

	t.Run("Success: Active goals override defaults", func(t *testing.T) {
		repo := new(MockGoalRepo)
		repo.On("ListActive", ctx, testUser).Return([]*domain.Goal{
			{UserID: testUser, Type: domain.GoalProtein, TargetValue: 180},
			{UserID: testUser, Type: "steps", TargetValue: 10000},
		}, nil)

		targets, err := services.NewGoalService(repo).Resolve(ctx, testUser)
		require.NoError(t, err)

		assert.Len(t, targets, 4)
		assert.Equal(t, 180.0, targets[domain.GoalProtein])
		assert.Equal(t, 2200.0, targets[domain.GoalDailyCalories])
	})

	t.Run("Success: Defaults are not mutated", func(t *testing.T) {
		repo := new(MockGoalRepo)
		repo.On("ListActive", ctx, testUser).Return([]*domain.Goal{
			{UserID: testUser, Type: domain.GoalFat, TargetValue: 90},
		}, nil)

		_, err := services.NewGoalService(repo).Resolve(ctx, testUser)
		require.NoError(t, err)
		assert.Equal(t, 70.0, domain.DefaultGoals[domain.GoalFat])
	})

	t.Run("Error: Store failure propagates", func(t *testing.T) {
		repo := new(MockGoalRepo)
		boom := errors.New("db down")
		repo.On("ListActive", ctx, testUser).Return(nil, boom)

		targets, err := services.NewGoalService(repo).Resolve(ctx, testUser)
		assert.Nil(t, targets)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGoalService_SetGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Upserts a valid goal", func(t *testing.T) {
		repo := new(MockGoalRepo)
		repo.On("Upsert", ctx, mock.MatchedBy(func(g *domain.Goal) bool {
			return g.UserID == testUser && g.Type == domain.GoalCarbs && g.TargetValue == 200
		})).Return(nil)

		goal, err := services.NewGoalService(repo).SetGoal(ctx, services.SetGoalInput{
			UserID: testUser, Type: "carb_target", TargetValue: 200,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.GoalCarbs, goal.Type)
		assert.False(t, goal.UpdatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("Error: Validation happens before the store", func(t *testing.T) {
		repo := new(MockGoalRepo)
		svc := services.NewGoalService(repo)

		_, err := svc.SetGoal(ctx, services.SetGoalInput{UserID: testUser, Type: "steps", TargetValue: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidGoalType)

		_, err = svc.SetGoal(ctx, services.SetGoalInput{UserID: testUser, Type: "fat_target", TargetValue: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidGoalValue)

		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

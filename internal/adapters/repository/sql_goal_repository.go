package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var _ domain.GoalRepository = (*SQLGoalRepository)(nil)

type SQLGoalRepository struct {
	db *sqlx.DB
}

func NewSQLGoalRepository(db *sqlx.DB) *SQLGoalRepository {
	return &SQLGoalRepository{db: db}
}

// Upsert keeps a single active row per (user, goal type).
func (r *SQLGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	if goal.UpdatedAt.IsZero() {
		goal.UpdatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO goals (user_id, goal_type, target_value, updated_at)
		VALUES (:user_id, :goal_type, :target_value, :updated_at)
		ON CONFLICT (user_id, goal_type) DO UPDATE
		SET target_value = excluded.target_value,
		    updated_at = excluded.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, goal); err != nil {
		return fmt.Errorf("repository: upsert goal: %w", err)
	}
	return nil
}

func (r *SQLGoalRepository) ListActive(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}
	query := r.db.Rebind(`
		SELECT user_id, goal_type, target_value, updated_at
		FROM goals
		WHERE user_id = ?
		ORDER BY goal_type`)

	if err := r.db.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list goals: %w", err)
	}
	return goals, nil
}

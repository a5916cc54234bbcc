package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var _ domain.LogRepository = (*SQLLogRepository)(nil)

const logColumns = `id, user_id, kind, log_date, log_time,
	calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g,
	volume_ml, amount_mg, total_volume, duration_hours, weight_kg,
	notes, created_at, deleted_at`

// SQLLogRepository stores log entries in Postgres or SQLite. Queries are
// written with '?' placeholders and rebound for the connection's driver.
type SQLLogRepository struct {
	db *sqlx.DB
}

func NewSQLLogRepository(db *sqlx.DB) *SQLLogRepository {
	return &SQLLogRepository{db: db}
}

func (r *SQLLogRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO log_entries (
			id, user_id, kind, log_date, log_time,
			calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g,
			volume_ml, amount_mg, total_volume, duration_hours, weight_kg,
			notes, created_at, deleted_at
		) VALUES (
			:id, :user_id, :kind, :log_date, :log_time,
			:calories, :protein_g, :carbs_g, :fat_g, :fiber_g, :sugar_g,
			:volume_ml, :amount_mg, :total_volume, :duration_hours, :weight_kg,
			:notes, :created_at, :deleted_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLogConflict
		}
		return fmt.Errorf("repository: insert log entry: %w", err)
	}
	return nil
}

func (r *SQLLogRepository) GetByID(ctx context.Context, id string) (*domain.LogEntry, error) {
	var entry domain.LogEntry
	query := r.db.Rebind(`SELECT ` + logColumns + ` FROM log_entries WHERE id = ? AND deleted_at IS NULL`)

	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, fmt.Errorf("repository: get log entry: %w", err)
	}
	return &entry, nil
}

func (r *SQLLogRepository) FetchLogs(ctx context.Context, userID string, kind domain.LogKind, from, to string) ([]*domain.LogEntry, error) {
	entries := []*domain.LogEntry{}

	query := r.db.Rebind(`
		SELECT ` + logColumns + ` FROM log_entries
		WHERE user_id = ?
		  AND kind = ?
		  AND log_date >= ?
		  AND log_date <= ?
		  AND deleted_at IS NULL
		ORDER BY log_date, log_time`)

	if err := r.db.SelectContext(ctx, &entries, query, userID, string(kind), from, to); err != nil {
		return nil, fmt.Errorf("repository: fetch %s logs: %w", kind, err)
	}
	return entries, nil
}

func (r *SQLLogRepository) Delete(ctx context.Context, id string, userID string) error {
	query := r.db.Rebind(`
		UPDATE log_entries
		SET deleted_at = ?
		WHERE id = ?
		  AND user_id = ?
		  AND deleted_at IS NULL`)

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id, userID)
	if err != nil {
		return fmt.Errorf("repository: delete log entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}

func (r *SQLLogRepository) ListActiveUsers(ctx context.Context, since string) ([]string, error) {
	users := []string{}
	query := r.db.Rebind(`
		SELECT DISTINCT user_id FROM log_entries
		WHERE log_date >= ? AND deleted_at IS NULL
		ORDER BY user_id`)

	if err := r.db.SelectContext(ctx, &users, query, since); err != nil {
		return nil, fmt.Errorf("repository: list active users: %w", err)
	}
	return users, nil
}

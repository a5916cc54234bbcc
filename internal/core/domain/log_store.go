package domain

import (
	"context"
	"errors"
)

var (
	ErrLogNotFound  = errors.New("log entry not found")
	ErrLogConflict  = errors.New("log entry already exists")
	ErrUnauthorized = errors.New("unauthorized access to resource")
)

// LogStore is the read side the analytics engine depends on.
type LogStore interface {
	// FetchLogs returns the user's non-deleted entries of one kind whose
	// log_date falls in [from, to] (inclusive, YYYY-MM-DD). Order is unspecified.
	FetchLogs(ctx context.Context, userID string, kind LogKind, from, to string) ([]*LogEntry, error)
}

type LogRepository interface {
	LogStore
	// Create persists a new entry.
	Create(ctx context.Context, entry *LogEntry) error
	// GetByID retrieves a single non-deleted entry.
	GetByID(ctx context.Context, id string) (*LogEntry, error)
	// Delete soft-deletes the entry. userID must own it.
	Delete(ctx context.Context, id string, userID string) error
	// ListActiveUsers returns users with at least one entry dated on or after since.
	ListActiveUsers(ctx context.Context, since string) ([]string, error)
}

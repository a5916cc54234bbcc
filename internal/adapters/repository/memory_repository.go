package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var (
	_ domain.LogRepository  = (*InMemoryLogRepository)(nil)
	_ domain.GoalRepository = (*InMemoryGoalRepository)(nil)
)

// InMemoryLogRepository backs the CLI's demo mode and handler tests. Stored
// entries are copied in and out so callers cannot mutate them.
type InMemoryLogRepository struct {
	store map[string]domain.LogEntry

	mu sync.RWMutex
}

func NewInMemoryLogRepository() *InMemoryLogRepository {
	return &InMemoryLogRepository{
		store: make(map[string]domain.LogEntry),
	}
}

func (r *InMemoryLogRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[entry.ID]; ok {
		return domain.ErrLogConflict
	}
	r.store[entry.ID] = *entry
	return nil
}

func (r *InMemoryLogRepository) GetByID(ctx context.Context, id string) (*domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil {
		return nil, domain.ErrLogNotFound
	}
	return &entry, nil
}

func (r *InMemoryLogRepository) FetchLogs(ctx context.Context, userID string, kind domain.LogKind, from, to string) ([]*domain.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.LogEntry{}
	for _, e := range r.store {
		if e.UserID != userID || e.Kind != kind || e.DeletedAt != nil {
			continue
		}
		if e.LogDate < from || e.LogDate > to {
			continue
		}
		entry := e
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LogDate != entries[j].LogDate {
			return entries[i].LogDate < entries[j].LogDate
		}
		return entries[i].MinuteOfDay() < entries[j].MinuteOfDay()
	})

	return entries, nil
}

func (r *InMemoryLogRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.store[id]
	if !ok || entry.DeletedAt != nil || entry.UserID != userID {
		return domain.ErrLogNotFound
	}

	now := time.Now().UTC()
	entry.DeletedAt = &now
	r.store[id] = entry
	return nil
}

func (r *InMemoryLogRepository) ListActiveUsers(ctx context.Context, since string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	users := []string{}
	for _, e := range r.store {
		if e.DeletedAt == nil && e.LogDate >= since && !seen[e.UserID] {
			seen[e.UserID] = true
			users = append(users, e.UserID)
		}
	}
	sort.Strings(users)
	return users, nil
}

type InMemoryGoalRepository struct {
	store map[string]map[domain.GoalType]domain.Goal

	mu sync.RWMutex
}

func NewInMemoryGoalRepository() *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store: make(map[string]map[domain.GoalType]domain.Goal),
	}
}

func (r *InMemoryGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, ok := r.store[goal.UserID]
	if !ok {
		goals = make(map[domain.GoalType]domain.Goal)
		r.store[goal.UserID] = goals
	}
	goals[goal.Type] = *goal
	return nil
}

func (r *InMemoryGoalRepository) ListActive(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*domain.Goal{}
	for _, g := range r.store[userID] {
		goal := g
		goals = append(goals, &goal)
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Type < goals[j].Type
	})

	return goals, nil
}

package services

import (
	"context"
	"log"
	"sort"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

// SnapshotQueue schedules a background recompute of one user-date.
type SnapshotQueue interface {
	Enqueue(userID string, date string)
}

type LogService struct {
	repo  domain.LogRepository
	cache domain.SnapshotCache
	queue SnapshotQueue
}

// NewLogService wires the write path. cache and queue may be nil.
func NewLogService(repo domain.LogRepository, cache domain.SnapshotCache, queue SnapshotQueue) *LogService {
	return &LogService{
		repo:  repo,
		cache: cache,
		queue: queue,
	}
}

type CreateLogInput struct {
	UserID        string
	Kind          string
	LogDate       string
	LogTime       string
	Calories      float64
	ProteinG      float64
	CarbsG        float64
	FatG          float64
	FiberG        float64
	SugarG        float64
	VolumeMl      float64
	AmountMg      float64
	TotalVolume   float64
	DurationHours float64
	WeightKg      float64
	Notes         string
}

type ListLogsInput struct {
	UserID string
	Kind   string
	From   string
	To     string
}

func (s *LogService) Create(ctx context.Context, input CreateLogInput) (*domain.LogEntry, error) {
	entry := domain.NewLogEntry(input.UserID, domain.LogKind(input.Kind), input.LogDate, input.LogTime)
	entry.Calories = input.Calories
	entry.ProteinG = input.ProteinG
	entry.CarbsG = input.CarbsG
	entry.FatG = input.FatG
	entry.FiberG = input.FiberG
	entry.SugarG = input.SugarG
	entry.VolumeMl = input.VolumeMl
	entry.AmountMg = input.AmountMg
	entry.TotalVolume = input.TotalVolume
	entry.DurationHours = input.DurationHours
	entry.WeightKg = input.WeightKg
	entry.Notes = input.Notes

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.retract(ctx, entry.UserID, entry.LogDate)

	return entry, nil
}

func (s *LogService) GetByID(ctx context.Context, id string, userID string) (*domain.LogEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

// List returns entries ordered by date and time. An empty kind means all kinds.
func (s *LogService) List(ctx context.Context, input ListLogsInput) ([]*domain.LogEntry, error) {
	if !domain.IsValidDate(input.From) || !domain.IsValidDate(input.To) || input.From > input.To {
		return nil, domain.ErrInvalidDateRange
	}

	kinds := domain.AllLogKinds
	if input.Kind != "" {
		kind := domain.LogKind(input.Kind)
		if !kind.Valid() {
			return nil, domain.ErrInvalidLogKind
		}
		kinds = []domain.LogKind{kind}
	}

	entries := make([]*domain.LogEntry, 0)
	for _, kind := range kinds {
		list, err := s.repo.FetchLogs(ctx, input.UserID, kind, input.From, input.To)
		if err != nil {
			return nil, err
		}
		entries = append(entries, list...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].LogDate != entries[j].LogDate {
			return entries[i].LogDate < entries[j].LogDate
		}
		return entries[i].MinuteOfDay() < entries[j].MinuteOfDay()
	})

	return entries, nil
}

// Delete removes the entry and retracts it from the derived snapshot of its date.
func (s *LogService) Delete(ctx context.Context, id string, userID string) error {
	entry, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.retract(ctx, entry.UserID, entry.LogDate)

	return nil
}

func (s *LogService) retract(ctx context.Context, userID, date string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID, date); err != nil {
			log.Printf("[CACHE] Failed to invalidate snapshot %s/%s: %v", userID, date, err)
		}
	}
	if s.queue != nil {
		s.queue.Enqueue(userID, date)
	}
}

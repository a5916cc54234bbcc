package services

import (
	"context"
	"errors"
	"log"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

// Aggregator is the single place where raw entries become daily snapshots.
type Aggregator struct {
	store domain.LogStore
	cache domain.SnapshotCache
}

// NewAggregator builds an Aggregator. cache may be nil.
func NewAggregator(store domain.LogStore, cache domain.SnapshotCache) *Aggregator {
	return &Aggregator{
		store: store,
		cache: cache,
	}
}

// Aggregate returns the snapshots of every date in r that has at least one
// entry. Dates without entries are absent; callers treat them as zero.
//
// When some kinds cannot be read the returned map still holds the others and
// the error is a *domain.DataUnavailableError.
func (a *Aggregator) Aggregate(ctx context.Context, userID string, r domain.DateRange) (map[string]domain.DailySnapshot, error) {
	return a.aggregate(ctx, userID, r, true)
}

// Refresh recomputes every date of r from the store and overwrites the
// cached snapshots, unless a write invalidated a date in the meantime.
func (a *Aggregator) Refresh(ctx context.Context, userID string, r domain.DateRange) error {
	_, err := a.aggregate(ctx, userID, r, false)
	return err
}

func (a *Aggregator) aggregate(ctx context.Context, userID string, r domain.DateRange, readCache bool) (map[string]domain.DailySnapshot, error) {
	out := make(map[string]domain.DailySnapshot)
	if r.IsEmpty() {
		return out, nil
	}

	missing := r.Dates()
	if a.cache != nil && readCache {
		cached, miss, err := a.cache.GetSnapshots(ctx, userID, missing)
		if err != nil {
			log.Printf("[CACHE] Snapshot read failed for user %s: %v", userID, err)
		} else {
			for date, snap := range cached {
				if snap.HasData() {
					out[date] = snap
				}
			}
			missing = miss
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	// Versions must be read before the store so a write that lands during
	// compute wins over this fill.
	var versions map[string]int64
	if a.cache != nil {
		v, err := a.cache.Versions(ctx, userID, missing)
		if err != nil {
			log.Printf("[CACHE] Version read failed for user %s: %v", userID, err)
		} else {
			versions = v
		}
	}

	fetchRange := domain.DateRange{From: missing[0], To: missing[len(missing)-1]}
	computed, err := a.compute(ctx, userID, fetchRange)

	var unavailable *domain.DataUnavailableError
	if err != nil && !errors.As(err, &unavailable) {
		return nil, err
	}

	fresh := make([]domain.DailySnapshot, 0, len(missing))
	for _, date := range missing {
		snap, ok := computed[date]
		if !ok {
			snap = domain.NewDailySnapshot(date)
		}
		if snap.HasData() {
			out[date] = snap
		}
		fresh = append(fresh, snap)
	}

	if unavailable != nil {
		return out, unavailable
	}

	if versions != nil {
		if err := a.cache.SetSnapshots(ctx, userID, fresh, versions); err != nil {
			log.Printf("[CACHE] Snapshot write failed for user %s: %v", userID, err)
		}
	}

	return out, nil
}

func (a *Aggregator) compute(ctx context.Context, userID string, r domain.DateRange) (map[string]domain.DailySnapshot, error) {
	var entries []*domain.LogEntry
	var failedKinds []domain.LogKind
	var errs []error

	for _, kind := range domain.AllLogKinds {
		list, err := a.store.FetchLogs(ctx, userID, kind, r.From, r.To)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			failedKinds = append(failedKinds, kind)
			errs = append(errs, err)
			continue
		}
		entries = append(entries, list...)
	}

	if len(failedKinds) == len(domain.AllLogKinds) {
		return nil, errors.Join(errs...)
	}

	snapshots := BuildSnapshots(entries, r)
	if len(failedKinds) > 0 {
		return snapshots, &domain.DataUnavailableError{Kinds: failedKinds, Err: errors.Join(errs...)}
	}
	return snapshots, nil
}

// BuildSnapshots reduces entries into per-date snapshots. Entries dated
// outside r are ignored.
func BuildSnapshots(entries []*domain.LogEntry, r domain.DateRange) map[string]domain.DailySnapshot {
	out := make(map[string]domain.DailySnapshot)
	if r.IsEmpty() {
		return out
	}
	for _, e := range entries {
		if e == nil || e.LogDate < r.From || e.LogDate > r.To {
			continue
		}
		snap, ok := out[e.LogDate]
		if !ok {
			snap = domain.NewDailySnapshot(e.LogDate)
		}
		snap.Add(e)
		out[e.LogDate] = snap
	}
	return out
}

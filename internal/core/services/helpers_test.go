package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

// fakeLogStore is an in-memory LogRepository whose reads can be made to fail per kind.
type fakeLogStore struct {
	mu      sync.Mutex
	entries []*domain.LogEntry
	failing map[domain.LogKind]error
	fetches int
}

func newFakeLogStore(entries ...*domain.LogEntry) *fakeLogStore {
	return &fakeLogStore{entries: entries, failing: map[domain.LogKind]error{}}
}

func (f *fakeLogStore) add(entries ...*domain.LogEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entries...)
}

func (f *fakeLogStore) fail(kind domain.LogKind, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[kind] = err
}

func (f *fakeLogStore) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeLogStore) FetchLogs(ctx context.Context, userID string, kind domain.LogKind, from, to string) ([]*domain.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if err := f.failing[kind]; err != nil {
		return nil, err
	}
	var out []*domain.LogEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Kind == kind && e.DeletedAt == nil && e.LogDate >= from && e.LogDate <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLogStore) Create(ctx context.Context, entry *domain.LogEntry) error {
	f.add(entry)
	return nil
}

func (f *fakeLogStore) GetByID(ctx context.Context, id string) (*domain.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ID == id && e.DeletedAt == nil {
			return e, nil
		}
	}
	return nil, domain.ErrLogNotFound
}

func (f *fakeLogStore) Delete(ctx context.Context, id string, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrLogNotFound
}

func (f *fakeLogStore) ListActiveUsers(ctx context.Context, since string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	var users []string
	for _, e := range f.entries {
		if e.LogDate >= since && !seen[e.UserID] {
			seen[e.UserID] = true
			users = append(users, e.UserID)
		}
	}
	sort.Strings(users)
	return users, nil
}

// fakeSnapshotCache keeps snapshots in a map keyed by user and date.
type fakeSnapshotCache struct {
	mu       sync.Mutex
	data     map[string]domain.DailySnapshot
	versions map[string]int64
	sets     int
	inval    []string
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{
		data:     map[string]domain.DailySnapshot{},
		versions: map[string]int64{},
	}
}

func cacheKey(userID, date string) string { return fmt.Sprintf("%s:%s", userID, date) }

func (c *fakeSnapshotCache) GetSnapshots(ctx context.Context, userID string, dates []string) (map[string]domain.DailySnapshot, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := map[string]domain.DailySnapshot{}
	var missing []string
	for _, d := range dates {
		if s, ok := c.data[cacheKey(userID, d)]; ok {
			found[d] = s
		} else {
			missing = append(missing, d)
		}
	}
	return found, missing, nil
}

func (c *fakeSnapshotCache) Versions(ctx context.Context, userID string, dates []string) (map[string]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(dates))
	for _, d := range dates {
		out[d] = c.versions[cacheKey(userID, d)]
	}
	return out, nil
}

func (c *fakeSnapshotCache) SetSnapshots(ctx context.Context, userID string, snapshots []domain.DailySnapshot, versions map[string]int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	for _, s := range snapshots {
		key := cacheKey(userID, s.Date)
		if c.versions[key] != versions[s.Date] {
			continue
		}
		c.data[key] = s
	}
	return nil
}

func (c *fakeSnapshotCache) Invalidate(ctx context.Context, userID string, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(userID, date)
	delete(c.data, key)
	c.versions[key]++
	c.inval = append(c.inval, key)
	return nil
}

type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) Upsert(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepo) ListActive(ctx context.Context, userID string) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

// defaultGoalResolver resolves to the defaults for every user.
func defaultGoalResolver() *services.GoalService {
	repo := new(MockGoalRepo)
	repo.On("ListActive", mock.Anything, mock.Anything).Return(nil, nil)
	return services.NewGoalService(repo)
}

const testUser = "user-1"

func meal(date, at string, kcal, protein float64) *domain.LogEntry {
	e := domain.NewLogEntry(testUser, domain.KindMeal, date, at)
	e.Calories = kcal
	e.ProteinG = protein
	return e
}

func hydration(date string, ml float64) *domain.LogEntry {
	e := domain.NewLogEntry(testUser, domain.KindHydration, date, "")
	e.VolumeMl = ml
	return e
}

func caffeine(date string, mg float64) *domain.LogEntry {
	e := domain.NewLogEntry(testUser, domain.KindCaffeine, date, "")
	e.AmountMg = mg
	return e
}

func sleep(date string, hours float64) *domain.LogEntry {
	e := domain.NewLogEntry(testUser, domain.KindSleep, date, "")
	e.DurationHours = hours
	return e
}

func weight(date string, kg float64) *domain.LogEntry {
	e := domain.NewLogEntry(testUser, domain.KindBodyWeight, date, "")
	e.WeightKg = kg
	return e
}

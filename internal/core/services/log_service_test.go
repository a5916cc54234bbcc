package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

type recordingQueue struct {
	mu   sync.Mutex
	jobs []string
}

func (q *recordingQueue) Enqueue(userID string, date string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, userID+":"+date)
}

func TestLogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists and retracts the cached snapshot", func(t *testing.T) {
		store := newFakeLogStore()
		cache := newFakeSnapshotCache()
		queue := &recordingQueue{}
		svc := services.NewLogService(store, cache, queue)

		entry, err := svc.Create(ctx, services.CreateLogInput{
			UserID:   testUser,
			Kind:     "meal",
			LogDate:  "2024-03-01",
			LogTime:  "12:30",
			Calories: 650,
			ProteinG: 40,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		require.NotNil(t, entry.LogTime)
		assert.Equal(t, "12:30", *entry.LogTime)

		stored, err := store.GetByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, 650.0, stored.Calories)

		assert.Equal(t, []string{"user-1:2024-03-01"}, cache.inval)
		assert.Equal(t, []string{"user-1:2024-03-01"}, queue.jobs)
	})

	t.Run("Success: Works without cache or queue", func(t *testing.T) {
		svc := services.NewLogService(newFakeLogStore(), nil, nil)

		_, err := svc.Create(ctx, services.CreateLogInput{UserID: testUser, Kind: "hydration", LogDate: "2024-03-01", VolumeMl: 300})
		require.NoError(t, err)
	})

	t.Run("Error: Invalid entries are rejected", func(t *testing.T) {
		store := newFakeLogStore()
		svc := services.NewLogService(store, nil, nil)

		tests := []struct {
			name  string
			input services.CreateLogInput
			want  error
		}{
			{"Unknown kind", services.CreateLogInput{UserID: testUser, Kind: "snack", LogDate: "2024-03-01"}, domain.ErrInvalidLogKind},
			{"Bad date", services.CreateLogInput{UserID: testUser, Kind: "meal", LogDate: "03/01/2024"}, domain.ErrInvalidLogDate},
			{"Bad time", services.CreateLogInput{UserID: testUser, Kind: "meal", LogDate: "2024-03-01", LogTime: "25:00"}, domain.ErrInvalidLogTime},
			{"Negative payload", services.CreateLogInput{UserID: testUser, Kind: "meal", LogDate: "2024-03-01", Calories: -5}, domain.ErrInvalidLogEntry},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tt.input)
				assert.ErrorIs(t, err, tt.want)
			})
		}
		assert.Empty(t, store.entries)
	})
}

func TestLogService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Removes the entry from later aggregations", func(t *testing.T) {
		existing := meal("2024-03-01", "08:00", 500, 30)
		store := newFakeLogStore(existing, meal("2024-03-01", "13:00", 700, 40))
		cache := newFakeSnapshotCache()
		agg := services.NewAggregator(store, cache)
		svc := services.NewLogService(store, cache, nil)
		r := domain.DateRange{From: "2024-03-01", To: "2024-03-01"}

		before, err := agg.Aggregate(ctx, testUser, r)
		require.NoError(t, err)
		assert.Equal(t, 1200.0, before["2024-03-01"].Calories)

		require.NoError(t, svc.Delete(ctx, existing.ID, testUser))

		after, err := agg.Aggregate(ctx, testUser, r)
		require.NoError(t, err)
		assert.Equal(t, 700.0, after["2024-03-01"].Calories)
		assert.Equal(t, 1, after["2024-03-01"].MealCount)
	})

	t.Run("Error: Other users cannot delete", func(t *testing.T) {
		existing := meal("2024-03-01", "08:00", 500, 30)
		store := newFakeLogStore(existing)
		svc := services.NewLogService(store, nil, nil)

		err := svc.Delete(ctx, existing.ID, "intruder")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = store.GetByID(ctx, existing.ID)
		assert.NoError(t, err)
	})

	t.Run("Error: Missing entry", func(t *testing.T) {
		svc := services.NewLogService(newFakeLogStore(), nil, nil)
		assert.ErrorIs(t, svc.Delete(ctx, "nope", testUser), domain.ErrLogNotFound)
	})
}

func TestLogService_List(t *testing.T) {
	ctx := context.Background()
	store := newFakeLogStore(
		meal("2024-03-02", "19:00", 700, 40),
		hydration("2024-03-01", 500),
		meal("2024-03-02", "08:00", 300, 20),
		caffeine("2024-03-05", 100),
	)
	svc := services.NewLogService(store, nil, nil)

	t.Run("Success: All kinds sorted by date and time", func(t *testing.T) {
		entries, err := svc.List(ctx, services.ListLogsInput{UserID: testUser, From: "2024-03-01", To: "2024-03-03"})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, domain.KindHydration, entries[0].Kind)
		assert.Equal(t, "08:00", *entries[1].LogTime)
		assert.Equal(t, "19:00", *entries[2].LogTime)
	})

	t.Run("Success: Filter by kind", func(t *testing.T) {
		entries, err := svc.List(ctx, services.ListLogsInput{UserID: testUser, Kind: "caffeine", From: "2024-03-01", To: "2024-03-31"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("Error: Bad filters", func(t *testing.T) {
		_, err := svc.List(ctx, services.ListLogsInput{UserID: testUser, Kind: "snack", From: "2024-03-01", To: "2024-03-31"})
		assert.ErrorIs(t, err, domain.ErrInvalidLogKind)

		_, err = svc.List(ctx, services.ListLogsInput{UserID: testUser, From: "2024-03-31", To: "2024-03-01"})
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}

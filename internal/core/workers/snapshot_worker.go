package workers

import (
	"context"
	"log"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

const defaultQueueSize = 100

// Refresher recomputes and caches the snapshots of a date range.
type Refresher interface {
	Refresh(ctx context.Context, userID string, r domain.DateRange) error
}

type SnapshotJob struct {
	UserID string
	Range  domain.DateRange
}

// SnapshotWorker re-warms the snapshot cache off the request path after log
// writes and on the periodic schedule.
type SnapshotWorker struct {
	refresher Refresher
	jobs      chan SnapshotJob
}

func NewSnapshotWorker(refresher Refresher) *SnapshotWorker {
	return NewSnapshotWorkerWithSize(refresher, defaultQueueSize)
}

func NewSnapshotWorkerWithSize(refresher Refresher, size int) *SnapshotWorker {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &SnapshotWorker{
		refresher: refresher,
		jobs:      make(chan SnapshotJob, size),
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Snapshot worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Snapshot worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue schedules a single date.
func (w *SnapshotWorker) Enqueue(userID string, date string) {
	w.EnqueueRange(userID, domain.DateRange{From: date, To: date})
}

// EnqueueRange never blocks; the job is dropped when the queue is full.
func (w *SnapshotWorker) EnqueueRange(userID string, r domain.DateRange) bool {
	select {
	case w.jobs <- SnapshotJob{UserID: userID, Range: r}:
		return true
	default:
		log.Printf("[WORKER] Snapshot queue full! Dropping job for user %s (%s..%s)", userID, r.From, r.To)
		return false
	}
}

func (w *SnapshotWorker) processJob(ctx context.Context, job SnapshotJob) {
	if job.Range.IsEmpty() {
		return
	}
	if err := w.refresher.Refresh(ctx, job.UserID, job.Range); err != nil {
		log.Printf("[WORKER] Error refreshing snapshots for %s (%s..%s): %v", job.UserID, job.Range.From, job.Range.To, err)
	}
}

// Package scheduler periodically re-warms the snapshot cache for recently active users.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

type UserLister interface {
	ListActiveUsers(ctx context.Context, since string) ([]string, error)
}

type RangeQueue interface {
	EnqueueRange(userID string, r domain.DateRange) bool
}

type Scheduler struct {
	users    UserLister
	queue    RangeQueue
	interval time.Duration
	days     int
	loc      *time.Location
	now      func() time.Time

	cron gocron.Scheduler
}

// New builds a Scheduler. loc decides which calendar day is "today" when
// computing the warm window; nil means UTC.
func New(users UserLister, queue RangeQueue, interval time.Duration, days int, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		users:    users,
		queue:    queue,
		interval: interval,
		days:     days,
		loc:      loc,
		now:      time.Now,
	}
}

// WarmOnce enqueues the trailing window of every user active inside it and
// returns how many jobs were accepted.
func (s *Scheduler) WarmOnce(ctx context.Context) (int, error) {
	r := domain.TrailingRange(s.now().In(s.loc), s.days)
	if r.IsEmpty() {
		return 0, nil
	}

	users, err := s.users.ListActiveUsers(ctx, r.From)
	if err != nil {
		return 0, fmt.Errorf("scheduler: list active users: %w", err)
	}

	queued := 0
	for _, u := range users {
		if s.queue.EnqueueRange(u, r) {
			queued++
		}
	}
	return queued, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	cron, err := gocron.NewScheduler(gocron.WithLocation(s.loc))
	if err != nil {
		return err
	}

	_, err = cron.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			queued, err := s.WarmOnce(ctx)
			if err != nil {
				log.Printf("[SCHEDULER] Cache warm failed: %v", err)
				return
			}
			log.Printf("[SCHEDULER] Queued snapshot warm for %d users", queued)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = cron.Shutdown()
		return err
	}

	cron.Start()
	s.cron = cron
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.cron == nil {
		return nil
	}
	return s.cron.Shutdown()
}

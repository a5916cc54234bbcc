package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var _ domain.GoalRepository = (*CachedGoalRepository)(nil)

const defaultGoalCacheTTL = 30 * time.Minute

// CachedGoalRepository keeps each user's goal list in Redis. Every insight,
// stats and dashboard request resolves goals, while writes are rare.
type CachedGoalRepository struct {
	next  domain.GoalRepository
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedGoalRepository(next domain.GoalRepository, cache *redis.Client, ttl time.Duration) *CachedGoalRepository {
	if ttl <= 0 {
		ttl = defaultGoalCacheTTL
	}
	return &CachedGoalRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedGoalRepository) cacheKey(userID string) string {
	return fmt.Sprintf("goals:%s", userID)
}

func (r *CachedGoalRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate goals for user %s: %v", userID, err)
	}
}

func (r *CachedGoalRepository) ListActive(ctx context.Context, userID string) ([]*domain.Goal, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var goals []*domain.Goal
		if err := json.Unmarshal([]byte(val), &goals); err == nil {
			return goals, nil
		}

		log.Printf("[CACHE] Corrupted goals for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	goals, err := r.next.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(goals); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return goals, nil
}

func (r *CachedGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Upsert(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

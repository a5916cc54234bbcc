package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var _ domain.SnapshotCache = (*SnapshotCache)(nil)

const DefaultSnapshotTTL = 30 * time.Minute

// versionTTL outlives any aggregation in flight. An expired version only
// makes a pending fill compare unequal and get dropped.
const versionTTL = 24 * time.Hour

// setIfCurrent writes each snapshot only if its version key still holds the
// version read before the store was queried.
// KEYS: version, snapshot pairs. ARGV[1]: ttl ms, then expected, data pairs.
var setIfCurrent = redis.NewScript(`
local written = 0
for i = 1, #KEYS, 2 do
  local current = tonumber(redis.call('GET', KEYS[i]) or '0')
  if current == tonumber(ARGV[i + 1]) then
    redis.call('SET', KEYS[i + 1], ARGV[i + 2], 'PX', ARGV[1])
    written = written + 1
  end
end
return written
`)

// SnapshotCache stores one JSON document per user-date. The log store stays
// the source of truth; every write to a date deletes its key and bumps the
// date's version so fills computed before the write are discarded.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SnapshotCache) key(userID, date string) string {
	return fmt.Sprintf("snapshot:%s:%s", userID, date)
}

func (c *SnapshotCache) versionKey(userID, date string) string {
	return fmt.Sprintf("snapshot:version:%s:%s", userID, date)
}

// GetSnapshots returns the cached dates and, in input order, the dates that
// have to be recomputed. Undecodable entries count as missing and are removed.
func (c *SnapshotCache) GetSnapshots(ctx context.Context, userID string, dates []string) (map[string]domain.DailySnapshot, []string, error) {
	found := make(map[string]domain.DailySnapshot, len(dates))
	if len(dates) == 0 {
		return found, nil, nil
	}

	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = c.key(userID, d)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("cache: mget snapshots: %w", err)
	}

	var missing []string
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, dates[i])
			continue
		}

		var snap domain.DailySnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil || snap.Date != dates[i] {
			log.Printf("[CACHE] Corrupted snapshot %s, cleaning up key", keys[i])
			c.client.Del(ctx, keys[i])
			missing = append(missing, dates[i])
			continue
		}
		found[dates[i]] = snap
	}

	return found, missing, nil
}

func (c *SnapshotCache) Versions(ctx context.Context, userID string, dates []string) (map[string]int64, error) {
	versions := make(map[string]int64, len(dates))
	if len(dates) == 0 {
		return versions, nil
	}

	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = c.versionKey(userID, d)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("cache: mget versions: %w", err)
	}

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			versions[dates[i]] = 0
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cache: bad version %s: %w", keys[i], err)
		}
		versions[dates[i]] = n
	}
	return versions, nil
}

func (c *SnapshotCache) SetSnapshots(ctx context.Context, userID string, snapshots []domain.DailySnapshot, versions map[string]int64) error {
	if len(snapshots) == 0 {
		return nil
	}

	keys := make([]string, 0, 2*len(snapshots))
	args := make([]interface{}, 0, 1+2*len(snapshots))
	args = append(args, c.ttl.Milliseconds())
	for _, s := range snapshots {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("cache: encode snapshot %s: %w", s.Date, err)
		}
		keys = append(keys, c.versionKey(userID, s.Date), c.key(userID, s.Date))
		args = append(args, versions[s.Date], string(data))
	}

	written, err := setIfCurrent.Run(ctx, c.client, keys, args...).Int()
	if err != nil {
		return fmt.Errorf("cache: store snapshots: %w", err)
	}
	if written < len(snapshots) {
		log.Printf("[CACHE] Dropped %d stale snapshot(s) for user %s", len(snapshots)-written, userID)
	}
	return nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context, userID string, date string) error {
	vkey := c.versionKey(userID, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vkey)
		pipe.Expire(ctx, vkey, versionTTL)
		pipe.Del(ctx, c.key(userID, date))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache: invalidate snapshot: %w", err)
	}
	return nil
}

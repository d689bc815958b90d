package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MetricCache is a read-through cache for computed panel metrics. Every
// mutating workflow write invalidates the panel's entry, so a cached value is
// always identical to what a fresh recomputation would produce. A nil redis
// client degrades to a no-op cache.
type MetricCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMetricCache(rdb *redis.Client, ttl time.Duration) *MetricCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MetricCache{rdb: rdb, ttl: ttl}
}

func metricKey(panelId uuid.UUID) string {
	return fmt.Sprintf("panel:%s:metrics", panelId)
}

// Get unmarshals the cached panel computation into dest. Returns false on
// miss, disabled cache, or any redis/unmarshal failure (callers recompute).
func (c *MetricCache) Get(ctx context.Context, panelId uuid.UUID, dest interface{}) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, metricKey(panelId)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores the computation result. Failures are swallowed: the cache is an
// optimization, never a source of truth.
func (c *MetricCache) Set(ctx context.Context, panelId uuid.UUID, value interface{}) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, metricKey(panelId), raw, c.ttl)
}

// Invalidate drops the panel's cached metrics. Called after every committed
// write to questions, reactions, groups or vote orders.
func (c *MetricCache) Invalidate(ctx context.Context, panelId uuid.UUID) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, metricKey(panelId))
}

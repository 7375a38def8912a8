package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fstagno77/travel-organizer-sub001/config"
	"github.com/fstagno77/travel-organizer-sub001/internal/timeline"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds built timelines per trip so filter/search/view
// changes never rebuild them, and short-lived share locks so only one
// share link per trip and invitee is minted at a time.
type RedisCache struct {
	client      *redis.Client
	timelineTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, timelineTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		timelineTTL: timelineTTL,
	}
}

func (c *RedisCache) GetTimeline(ctx context.Context, tripID int64) (*timeline.Timeline, error) {
	data, err := c.client.Get(ctx, timelineKey(tripID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tl timeline.Timeline
	if err := json.Unmarshal(data, &tl); err != nil {
		return nil, err
	}
	return &tl, nil
}

func (c *RedisCache) SetTimeline(ctx context.Context, tripID int64, tl *timeline.Timeline) error {
	payload, err := json.Marshal(tl)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, timelineKey(tripID), payload, c.timelineTTL).Err()
}

func (c *RedisCache) InvalidateTimeline(ctx context.Context, tripID int64) error {
	return c.client.Del(ctx, timelineKey(tripID)).Err()
}

func (c *RedisCache) AcquireShareLock(ctx context.Context, tripID int64, email string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, shareLockKey(tripID, email), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseShareLock(ctx context.Context, tripID int64, email string) error {
	return c.client.Del(ctx, shareLockKey(tripID, email)).Err()
}

func timelineKey(tripID int64) string {
	return fmt.Sprintf("cache:timeline:%d", tripID)
}

func shareLockKey(tripID int64, email string) string {
	return fmt.Sprintf("lock:share:%d:%s", tripID, email)
}

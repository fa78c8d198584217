package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindhealth/internal/model"
)

// StatusCache holds the last computed dashboard per user
type StatusCache interface {
	Get(ctx context.Context, userID string) (*model.Dashboard, error)
	Set(ctx context.Context, d *model.Dashboard) error
	// SetIfAbsent stores d only when no dashboard is cached for its user.
	SetIfAbsent(ctx context.Context, d *model.Dashboard) (bool, error)
	Invalidate(ctx context.Context, userID string) error
}

type statusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatusCache creates a new status cache. ttl <= 0 falls back to 10 minutes.
func NewStatusCache(client *redis.Client, ttl time.Duration) StatusCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &statusCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *statusCache) key(userID string) string {
	return fmt.Sprintf("user:%s:status", userID)
}

func (c *statusCache) Get(ctx context.Context, userID string) (*model.Dashboard, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d model.Dashboard
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *statusCache) Set(ctx context.Context, d *model.Dashboard) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(d.UserID), data, c.ttl).Err()
}

func (c *statusCache) SetIfAbsent(ctx context.Context, d *model.Dashboard) (bool, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return false, err
	}
	return c.client.SetNX(ctx, c.key(d.UserID), data, c.ttl).Result()
}

func (c *statusCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

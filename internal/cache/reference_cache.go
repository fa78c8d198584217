package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindhealth/internal/model"
)

const disordersKey = "ref:disorders"

// ReferenceCache handles Redis operations for reference data
type ReferenceCache interface {
	GetDisorders(ctx context.Context) ([]*model.Disorder, error)
	SetDisorders(ctx context.Context, disorders []*model.Disorder) error
	GetStatistics(ctx context.Context, id string) (*model.Statistics, error)
	SetStatistics(ctx context.Context, stats *model.Statistics) error
	// Flush drops every reference key.
	Flush(ctx context.Context) error
}

type referenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReferenceCache creates a new reference cache
func NewReferenceCache(client *redis.Client) ReferenceCache {
	return &referenceCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *referenceCache) statsKey(id string) string {
	return fmt.Sprintf("ref:stats:%s", id)
}

func (c *referenceCache) GetDisorders(ctx context.Context) ([]*model.Disorder, error) {
	data, err := c.client.Get(ctx, disordersKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var disorders []*model.Disorder
	if err := json.Unmarshal([]byte(data), &disorders); err != nil {
		return nil, err
	}
	return disorders, nil
}

func (c *referenceCache) SetDisorders(ctx context.Context, disorders []*model.Disorder) error {
	data, err := json.Marshal(disorders)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, disordersKey, data, c.ttl).Err()
}

func (c *referenceCache) GetStatistics(ctx context.Context, id string) (*model.Statistics, error) {
	data, err := c.client.Get(ctx, c.statsKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.Statistics
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *referenceCache) SetStatistics(ctx context.Context, stats *model.Statistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.statsKey(stats.ID), data, c.ttl).Err()
}

func (c *referenceCache) Flush(ctx context.Context) error {
	keys := []string{disordersKey}
	iter := c.client.Scan(ctx, 0, c.statsKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.client.Del(ctx, keys...).Err()
}

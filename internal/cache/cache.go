// Package cache provides a Redis-backed cache for persisted generation jobs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lotayaai/lotaya-io/pkg/models"
	"github.com/redis/go-redis/v9"
)

// Cache is the job caching interface. Implementations must be safe for
// concurrent use.
type Cache interface {
	Ping(ctx context.Context) error
	SetJob(ctx context.Context, job *models.GenerationJob, ttl time.Duration) error
	GetJob(ctx context.Context, jobID string) (*models.GenerationJob, bool, error)
	Close() error
}

// RedisCache implements the Cache interface using go-redis/v9.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new RedisCache from a Redis URL.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) SetJob(ctx context.Context, job *models.GenerationJob, ttl time.Duration) error {
	b, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	return c.client.Set(ctx, JobKey(job.JobID), b, ttl).Err()
}

func (c *RedisCache) GetJob(ctx context.Context, jobID string) (*models.GenerationJob, bool, error) {
	b, err := c.client.Get(ctx, JobKey(jobID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var job models.GenerationJob
	if err := json.Unmarshal(b, &job); err != nil {
		return nil, false, fmt.Errorf("decode job: %w", err)
	}
	return &job, true, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

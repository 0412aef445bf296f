package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aiactcheck/internal/model"
)

// ScoreCache handles Redis operations for the latest score per use case
type ScoreCache interface {
	Set(ctx context.Context, usecaseID string, result *model.ScoreResult) error
	Get(ctx context.Context, usecaseID string) (*model.ScoreResult, error)
	Invalidate(ctx context.Context, usecaseID string) error
}

type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new score cache
func NewScoreCache(client *redis.Client, ttl time.Duration) ScoreCache {
	return &scoreCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *scoreCache) key(usecaseID string) string {
	return fmt.Sprintf("usecase:%s:score", usecaseID)
}

func (c *scoreCache) Set(ctx context.Context, usecaseID string, result *model.ScoreResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(usecaseID), data, c.ttl).Err()
}

func (c *scoreCache) Get(ctx context.Context, usecaseID string) (*model.ScoreResult, error) {
	data, err := c.client.Get(ctx, c.key(usecaseID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.ScoreResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *scoreCache) Invalidate(ctx context.Context, usecaseID string) error {
	return c.client.Del(ctx, c.key(usecaseID)).Err()
}

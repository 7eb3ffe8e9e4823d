package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	domain "github.com/tdngo/gomarket-api/internal/entity"
	"github.com/tdngo/gomarket-api/internal/usecase"
)

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (r *RedisCache) SetStatus(ctx context.Context, orderID string, status string) error {
	return r.rdb.Set(ctx, "order:status:"+orderID, status, r.ttl).Err()
}

func (r *RedisCache) GetStatus(ctx context.Context, orderID string) (string, error) {
	val, err := r.rdb.Get(ctx, "order:status:"+orderID).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	return val, err
}

var _ usecase.OrderCache = (*RedisCache)(nil)

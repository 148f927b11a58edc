package repository

import (
	"context"
	"errors"
	"simulador_tokenizacao/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "simulador:"

// RedisCache stores results as plain string values with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISimulationCache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err()
}

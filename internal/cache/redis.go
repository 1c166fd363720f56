package cache

import (
	"context"
	"errors"
	"time"

	"evaluationservice/pkg/logging"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisCache struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisCache(rdb *redis.Client, prefix string) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: prefix}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		logging.FromContext(ctx).Warn(ctx, "cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		logging.FromContext(ctx).Warn(ctx, "cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Close() error {
	return r.rdb.Close()
}

// NopCache never stores anything. Used when no redis is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool)          { return nil, false }
func (NopCache) Set(context.Context, string, []byte, time.Duration) {}
func (NopCache) Delete(context.Context, string)                     {}

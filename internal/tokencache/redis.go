package tokencache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/censudex/gateway/internal/config"
)

// Redis is a Cache backed by a shared Redis instance, for deployments
// running more than one gateway replica.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{client: client}
}

// Get reports the cached verdict for key, if a live entry exists.
func (r *Redis) Get(ctx context.Context, key string) (bool, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

// Set stores a verdict for ttl, overwriting any previous entry.
func (r *Redis) Set(ctx context.Context, key string, valid bool, ttl time.Duration) error {
	val := "0"
	if valid {
		val = "1"
	}
	return r.client.Set(ctx, key, val, ttl).Err()
}

// Ping verifies Redis connectivity, used by the readiness probe.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *Redis) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

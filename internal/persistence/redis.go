package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/pos-service/internal/config"
)

const redisDialTimeout = 2 * time.Second

// Redis backs the catalog listing cache. Every helper tolerates a nil
// receiver and a missing server: callers degrade to database reads, so an
// unreachable Redis slows the catalog down but never takes it down.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. Connection
// failure is logged, not fatal.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("unable to reach redis, catalog cache disabled until it recovers",
			zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Available reports whether the wrapper holds a usable client.
func (r *Redis) Available() bool {
	return r != nil && r.Client != nil
}

// FetchJSON loads and decodes a cached value. False means cache miss,
// unreachable server or undecodable payload; the caller falls through to
// the database either way.
func (r *Redis) FetchJSON(ctx context.Context, key string, out any) bool {
	if !r.Available() {
		return false
	}
	raw, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// StoreJSON encodes and caches a value under the key with the given TTL.
func (r *Redis) StoreJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, encoded, ttl).Err()
}

// Counter reads an integer counter, returning 0 when absent or unreachable.
func (r *Redis) Counter(ctx context.Context, key string) int64 {
	if !r.Available() {
		return 0
	}
	n, err := r.Client.Get(ctx, key).Int64()
	if err != nil {
		return 0
	}
	return n
}

// Bump increments a counter key.
func (r *Redis) Bump(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	return r.Client.Incr(ctx, key).Err()
}

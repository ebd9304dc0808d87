// Package ratelimit provides request rate limiting backed by Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter implements a sliding-window limiter on a Redis sorted set per
// key.
type RedisLimiter struct {
	client   *redis.Client
	requests int
	window   time.Duration
	prefix   string
}

// NewRedisLimiter creates a RedisLimiter allowing `requests` per `window`.
func NewRedisLimiter(client *redis.Client, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		requests: requests,
		window:   window,
		prefix:   "ratelimit:",
	}
}

// Allow records the request and reports whether it fits in the window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now().UnixNano()
	windowStart := now - l.window.Nanoseconds()
	redisKey := l.prefix + key

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: now})
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return countCmd.Val() <= int64(l.requests), nil
}

// NoopLimiter allows everything. Used when rate limiting is disabled or
// Redis is not configured.
type NoopLimiter struct{}

// Allow always permits the request.
func (NoopLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

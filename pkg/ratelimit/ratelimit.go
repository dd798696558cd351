// Package ratelimit implements a fixed-window counter on Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// New returns a limiter allowing limit hits per window for each key.
// A nil client or a non-positive limit allows everything.
func New(client *redis.Client, prefix string, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	err = client.Ping(ctx).Err()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Allow counts a hit for key. The window starts at the first hit.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.client == nil || l.limit <= 0 {
		return true, nil
	}

	k := l.prefix + key

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return true, fmt.Errorf("exec pipeline: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

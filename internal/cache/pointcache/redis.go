package pointcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecomarine/ecaroute/internal/core/observability"
)

// RedisTier is the shared cache level backed by Redis. The catalogue is
// immutable for the process lifetime and the fingerprint is in every key, so
// entries need no invalidation; a generous TTL just bounds memory on the
// Redis side.
type RedisTier struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisTier connects and pings. A Redis that is down at startup is a
// configuration error worth failing on, not something to limp past silently.
func NewRedisTier(ctx context.Context, addr string, ttl time.Duration) (*RedisTier, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     32,
		MinIdleConns: 2,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	observability.ObserveCacheOp("ping", err, time.Since(start).Seconds())
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisTier{rdb: rdb, ttl: ttl}, nil
}

func (t *RedisTier) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, err := t.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCacheOp("get", nil, time.Since(start).Seconds())
		return "", false, nil
	}
	observability.ObserveCacheOp("get", err, time.Since(start).Seconds())
	if err != nil {
		return "", false, fmt.Errorf("redis GET %s: %w", key, err)
	}
	return v, true, nil
}

func (t *RedisTier) Set(ctx context.Context, key, val string) error {
	start := time.Now()
	err := t.rdb.Set(ctx, key, val, t.ttl).Err()
	observability.ObserveCacheOp("set", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

// Close releases the client.
func (t *RedisTier) Close() error { return t.rdb.Close() }

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	redisclient "github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
)

// RedisAdapter implements CacheProvider on Redis. Each call is traced as a
// cache span carrying the key.
type RedisAdapter struct {
	rdb *redis.Client
}

// NewRedisAdapter creates a new Redis cache adapter
func NewRedisAdapter(client *redisclient.Client) *RedisAdapter {
	return &RedisAdapter{rdb: client.Client()}
}

var _ providers.CacheProvider = (*RedisAdapter)(nil)

// Get retrieves a value; a missing or expired key yields ErrCacheMiss
func (a *RedisAdapter) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, done := traceCache(ctx, "get", key)
	defer func() { done(err) }()

	value, err = a.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", providers.ErrCacheMiss, key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value; expirationSeconds <= 0 keeps it until deleted
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) (err error) {
	ctx, done := traceCache(ctx, "set", key)
	defer func() { done(err) }()

	var expiration time.Duration
	if expirationSeconds > 0 {
		expiration = time.Duration(expirationSeconds) * time.Second
	}
	if err := a.rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes a value; deleting a missing key is not an error
func (a *RedisAdapter) Delete(ctx context.Context, key string) (err error) {
	ctx, done := traceCache(ctx, "delete", key)
	defer func() { done(err) }()

	if err := a.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

func traceCache(ctx context.Context, op, key string) (context.Context, func(error)) {
	ctx, span := observability.StartSpan(ctx, "cache."+op)
	observability.SetSpanAttributes(span, attribute.String("cache.key", key))
	return ctx, func(err error) {
		if !errors.Is(err, providers.ErrCacheMiss) {
			observability.RecordError(span, err)
		}
		span.End()
	}
}

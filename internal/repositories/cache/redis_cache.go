package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const (
	defaultKeyPrefix   = "ledger:stmt:"
	generationKey      = "ledger:generation"
	defaultFailures    = 5
	defaultOpenTimeout = 30 * time.Second
)

// RedisStatementCache stores rendered statements in Redis. Every call goes through a circuit
// breaker; failures and an open breaker both degrade to cache misses.
//
// A failed generation bump leaves statements of the previous generation readable, so the cache
// is bypassed until a later bump succeeds.
type RedisStatementCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
	prefix  string
	stale   atomic.Bool
}

// Option configures a RedisStatementCache.
type Option func(*options)

type options struct {
	prefix      string
	failures    uint32
	openTimeout time.Duration
}

// WithKeyPrefix namespaces statement keys.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithBreaker sets how many consecutive failures open the breaker and how long it stays open.
func WithBreaker(consecutiveFailures uint32, openTimeout time.Duration) Option {
	return func(o *options) {
		o.failures = consecutiveFailures
		o.openTimeout = openTimeout
	}
}

// NewRedisStatementCache creates a statement cache whose entries expire after ttl.
func NewRedisStatementCache(client *redis.Client, ttl time.Duration, opts ...Option) *RedisStatementCache {
	o := options{prefix: defaultKeyPrefix, failures: defaultFailures, openTimeout: defaultOpenTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "statement-cache",
		MaxRequests: 1,
		Timeout:     o.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= o.failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("breaker", name), slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})

	return &RedisStatementCache{client: client, breaker: breaker, ttl: ttl, prefix: o.prefix}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

var _ portsrepo.StatementCache = (*RedisStatementCache)(nil)

// State reports the breaker state.
func (c *RedisStatementCache) State() gobreaker.State {
	return c.breaker.State()
}

// Stale reports whether an invalidation is still owed to Redis.
func (c *RedisStatementCache) Stale() bool {
	return c.stale.Load()
}

func (c *RedisStatementCache) Get(ctx context.Context, key string, dest any) bool {
	if c.stale.Load() && !c.bumpGeneration(ctx) {
		return false
	}
	raw, err := c.breaker.Execute(func() (interface{}, error) {
		b, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Statement cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	b, ok := raw.([]byte)
	if !ok || b == nil {
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Discarding undecodable cached statement", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *RedisStatementCache) Set(ctx context.Context, key string, value any) {
	if c.stale.Load() {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Statement not cacheable", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, c.prefix+key, b, c.ttl).Err()
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Statement cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Generation returns the ledger generation, or 0 when Redis cannot be read.
func (c *RedisStatementCache) Generation(ctx context.Context) int64 {
	gen, err := c.breaker.Execute(func() (interface{}, error) {
		n, err := c.client.Get(ctx, generationKey).Int64()
		if errors.Is(err, redis.Nil) {
			return int64(0), nil
		}
		return n, err
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Ledger generation read failed", slog.String("error", err.Error()))
		return 0
	}
	return gen.(int64)
}

func (c *RedisStatementCache) Invalidate(ctx context.Context) {
	c.bumpGeneration(ctx)
}

// bumpGeneration increments the ledger generation and tracks whether it is still owed.
func (c *RedisStatementCache) bumpGeneration(ctx context.Context) bool {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.Incr(ctx, generationKey).Result()
	})
	if err != nil {
		c.stale.Store(true)
		middleware.GetLoggerFromCtx(ctx).Error("Ledger generation bump failed, bypassing statement cache",
			slog.String("error", err.Error()))
		return false
	}
	if c.stale.Swap(false) {
		middleware.GetLoggerFromCtx(ctx).Info("Ledger generation caught up, statement cache re-enabled")
	}
	return true
}

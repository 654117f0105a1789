package funcz

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/redis/go-redis/v9"

	"github.com/adobaai/underbar/encodingz/jsonz"
)

// Store holds memoized results by key.
// Implementations must be safe for concurrent use.
type Store[V any] interface {
	Get(key string) (V, bool)
	Set(key string, v V)
}

// StoreFactory creates the store of one memoized function.
// The namespace is unique to that function instance.
type StoreFactory[V any] func(namespace string) Store[V]

type lener interface {
	Len() int
}

type mapStore[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

// MapStore is the default [StoreFactory]: an unbounded in-memory map.
func MapStore[V any](string) Store[V] {
	return &mapStore[V]{m: make(map[string]V)}
}

func (s *mapStore[V]) Get(key string) (v V, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok = s.m[key]
	return
}

func (s *mapStore[V]) Set(key string, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = v
}

func (s *mapStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

type otterStore[V any] struct {
	c *otter.Cache[string, V]
}

// OtterStore returns a [StoreFactory] of in-memory caches holding at most
// maxSize results each. The least valuable results are evicted first.
func OtterStore[V any](maxSize int) StoreFactory[V] {
	return func(string) Store[V] {
		return otterStore[V]{
			c: otter.Must(&otter.Options[string, V]{MaximumSize: maxSize}),
		}
	}
}

func (s otterStore[V]) Get(key string) (V, bool) {
	return s.c.GetIfPresent(key)
}

func (s otterStore[V]) Set(key string, v V) {
	s.c.Set(key, v)
}

func (s otterStore[V]) Len() int {
	return s.c.EstimatedSize()
}

const defaultRedisTimeout = time.Second

type redisStore[V any] struct {
	rdb     redis.UniversalClient
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	logger  *slog.Logger
}

// RedisStore returns a [StoreFactory] keeping results in Redis as JSON,
// under "<prefix><namespace>:<key>" with the given ttl (0 keeps them forever).
//
// Redis failures are logged and treated as cache misses.
func RedisStore[V any](rdb redis.UniversalClient, prefix string, ttl time.Duration, opts ...Option,
) StoreFactory[V] {
	o := newOptions(opts)
	return func(ns string) Store[V] {
		return &redisStore[V]{
			rdb:     rdb,
			prefix:  prefix + ns + ":",
			ttl:     ttl,
			timeout: defaultRedisTimeout,
			logger:  o.logger,
		}
	}
}

func (s *redisStore[V]) Get(key string) (v V, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	bs, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		s.logger.WarnContext(ctx, "memo store get failed", "err", err)
		return
	}
	v, err = jsonz.Value[V](bs)
	if err != nil {
		s.logger.WarnContext(ctx, "memo store decode failed", "err", err)
		return
	}
	return v, true
}

func (s *redisStore[V]) Set(key string, v V) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	bs, err := json.Marshal(v)
	if err != nil {
		s.logger.WarnContext(ctx, "memo store encode failed", "err", err)
		return
	}
	if err = s.rdb.Set(ctx, s.prefix+key, bs, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "memo store set failed", "err", err)
	}
}

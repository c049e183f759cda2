package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/classtym/campaign/pkg/cache"
	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/pkg/redis"
)

// Store keeps rendered content between revalidations.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte) error
}

// MemoryStore is an in-process LRU store with a fixed time to live.
type MemoryStore struct {
	lru *cache.LRU[string, []byte]
}

// NewMemoryStore creates a MemoryStore holding at most capacity entries.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: cache.NewLRU(capacity, cache.WithTTL[string, []byte](ttl))}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	return m.lru.Get(key)
}

func (m *MemoryStore) Set(_ context.Context, key string, val []byte) error {
	m.lru.Put(key, val)
	return nil
}

// RedisStore shares cached content between instances through Redis.
// Read failures are logged and treated as misses.
type RedisStore struct {
	storage *redis.Storage
	ttl     time.Duration
	log     *slog.Logger
}

// NewRedisStore creates a RedisStore expiring entries after ttl.
func NewRedisStore(storage *redis.Storage, ttl time.Duration, log *slog.Logger) *RedisStore {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &RedisStore{storage: storage, ttl: ttl, log: log}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.storage.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "content cache read failed",
			logger.Component("content"),
			slog.String("key", key),
			logger.Error(err),
		)
		return nil, false
	}
	return val, val != nil
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte) error {
	return s.storage.Set(ctx, key, val, s.ttl)
}

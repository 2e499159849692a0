package adapter

import (
	"context"
	"time"

	"pgcet-quiz/internal/domain"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCacheAdapter is a process-local domain.Cache used when Redis is not configured.
// A background janitor evicts expired sessions until Close is called.
type MemoryCacheAdapter struct {
	cache *ttlcache.Cache[string, string]
}

func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	c := ttlcache.New[string, string](
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go c.Start()
	return &MemoryCacheAdapter{cache: c}
}

func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	item := m.cache.Get(key)
	if item == nil {
		return "", domain.ErrCacheMiss
	}
	return item.Value(), nil
}

// Set stores value under key. A non-positive expiration keeps it until deleted.
func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	ttl := ttlcache.NoTTL
	if expiration > 0 {
		ttl = expiration
	}
	m.cache.Set(key, value, ttl)
	return nil
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(context.Context) error {
	return nil
}

// Len reports the number of entries held, expired or not.
func (m *MemoryCacheAdapter) Len() int {
	return m.cache.Len()
}

// Close stops the eviction janitor.
func (m *MemoryCacheAdapter) Close() {
	m.cache.Stop()
}

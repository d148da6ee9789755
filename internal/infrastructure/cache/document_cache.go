package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DocumentCache stores rendered documents (PDF, XLSX) by key
type DocumentCache interface {
	// Get returns the cached bytes and whether the key was present
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const documentKeyPrefix = "flexo:doc:"

// DocumentKey builds the key of a document rendered from an aggregate. The
// version is part of the key, so an edit makes the old entry unreachable.
func DocumentKey(kind string, id uuid.UUID, version int) string {
	return fmt.Sprintf("%s:%s:v%d", kind, id, version)
}

// RedisDocumentCache implements DocumentCache using Redis
type RedisDocumentCache struct {
	client redis.UniversalClient
}

func NewRedisDocumentCache(client redis.UniversalClient) *RedisDocumentCache {
	return &RedisDocumentCache{client: client}
}

func (c *RedisDocumentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, documentKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached document: %w", err)
	}
	return data, true, nil
}

func (c *RedisDocumentCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, documentKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache document: %w", err)
	}
	return nil
}

func (c *RedisDocumentCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, documentKeyPrefix+key).Err()
}

var _ DocumentCache = (*RedisDocumentCache)(nil)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryDocumentCache implements DocumentCache in process memory, for
// single-instance deployments without Redis. Expired entries are removed by
// a background goroutine until Close is called.
type InMemoryDocumentCache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	maxBytes  int
	size      int
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryDocumentCache creates a cache holding at most maxBytes of
// documents; a non-positive maxBytes means 64 MiB.
func NewInMemoryDocumentCache(maxBytes int, cleanupInterval time.Duration) *InMemoryDocumentCache {
	if maxBytes <= 0 {
		maxBytes = 64 << 20
	}
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &InMemoryDocumentCache{
		entries:  make(map[string]entry),
		maxBytes: maxBytes,
		stopChan: make(chan struct{}),
	}
	c.wg.Add(1)
	go c.cleanupLoop(cleanupInterval)
	return c
}

func (c *InMemoryDocumentCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set stores data. Documents larger than the whole cache are not stored;
// when full, expired entries go first and then arbitrary ones.
func (c *InMemoryDocumentCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	if len(data) > c.maxBytes {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
	if c.size+len(data) > c.maxBytes {
		c.evictLocked(len(data))
	}
	c.entries[key] = entry{data: data, expiresAt: time.Now().Add(ttl)}
	c.size += len(data)
	return nil
}

func (c *InMemoryDocumentCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryDocumentCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// Size returns the number of cached bytes
func (c *InMemoryDocumentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

func (c *InMemoryDocumentCache) removeLocked(key string) {
	if e, ok := c.entries[key]; ok {
		c.size -= len(e.data)
		delete(c.entries, key)
	}
}

func (c *InMemoryDocumentCache) evictLocked(need int) {
	c.cleanupLocked(time.Now())
	for key := range c.entries {
		if c.size+need <= c.maxBytes {
			return
		}
		c.removeLocked(key)
	}
}

func (c *InMemoryDocumentCache) cleanupLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			c.cleanupLocked(now)
			c.mu.Unlock()
		}
	}
}

func (c *InMemoryDocumentCache) cleanupLocked(now time.Time) {
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			c.removeLocked(key)
		}
	}
}

var _ DocumentCache = (*InMemoryDocumentCache)(nil)

/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a bounded, time-expiring in-memory cache.
//
// Entries expire a fixed TTL after they were last written. Expiry is lazy: a stale
// entry stays in the store, and is counted by Size, until a Get on that key finds
// it. When a maximum size is configured, inserting a new key into a full cache
// evicts the entry that expires soonest.
package cache

import (
	"container/heap"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/notioncache/notioncache/internal/system/log"
)

const loggerComponentName = "Cache"

// Config holds the policy of a cache instance. It cannot be changed after construction.
type Config struct {
	// TTL is the lifetime of an entry, measured from its last Set. Must be positive.
	TTL time.Duration
	// MaxSize is the maximum number of stored entries. Zero means unbounded.
	MaxSize int
}

// Validate checks the configuration and returns a *ConfigurationError if it is invalid.
func (c Config) Validate() error {
	if c.TTL <= 0 {
		return &ConfigurationError{Field: "ttl", Value: c.TTL, Err: ErrInvalidTTL}
	}
	if c.MaxSize < 0 {
		return &ConfigurationError{Field: "maxSize", Value: c.MaxSize, Err: ErrInvalidMaxSize}
	}
	return nil
}

// Option configures optional behavior of a cache.
type Option func(*options)

type options struct {
	name  string
	clock clock.Clock
}

// WithName sets the name reported in logs and statistics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithClock sets the time source used to compute and check expiry.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// cacheEntry represents an entry in the store together with its position in the expiry heap.
type cacheEntry[T any] struct {
	*CacheEntry[T]
	heapItem *expiryHeapItem
}

// Cache is a bounded TTL cache holding values of type T.
//
// All operations are safe for concurrent use. Values are stored and returned as
// given; the cache never copies them.
type Cache[T any] struct {
	name         string
	ttl          time.Duration
	maxSize      int
	clock        clock.Clock
	logger       *log.Logger
	mu           sync.Mutex
	store        map[string]*cacheEntry[T]
	expiryHeap   *expiryHeap
	seq          uint64
	hitCount     int64
	missCount    int64
	evictCount   int64
	expiredCount int64
}

// New creates an empty cache with the given configuration.
func New[T any](cfg Config, opts ...Option) (*Cache[T], error) {
	o := options{
		name:  defaultCacheName,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyCacheName, o.name))

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid cache configuration", log.Error(err))
		return nil, err
	}

	logger.Debug("Initializing cache", log.Duration("ttl", cfg.TTL), log.Int("maxSize", cfg.MaxSize))

	h := &expiryHeap{}
	heap.Init(h)

	return &Cache[T]{
		name:       o.name,
		ttl:        cfg.TTL,
		maxSize:    cfg.MaxSize,
		clock:      o.clock,
		logger:     logger,
		store:      make(map[string]*cacheEntry[T]),
		expiryHeap: h,
	}, nil
}

// Name returns the name of the cache.
func (c *Cache[T]) Name() string {
	return c.name
}

// Get returns the value stored under key. The second result is false when the key
// is absent or its entry has expired; an expired entry is removed by this call.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		c.missCount++
		var zero T
		return zero, false
	}

	if entry.isExpired(c.clock.Now()) {
		c.deleteEntry(key, entry)
		c.expiredCount++
		c.missCount++
		c.logger.Debug("Cache entry expired", log.String("key", key))
		var zero T
		return zero, false
	}

	c.hitCount++
	return entry.Value, true
}

// Set stores value under key with a fresh expiry. Overwriting an existing key
// replaces both its value and expiry and never evicts another entry.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock.Now().Add(c.ttl)
	c.seq++

	// Update existing entry if an entry exists
	if existingEntry, exists := c.store[key]; exists {
		existingEntry.Value = value
		existingEntry.ExpiresAt = expiresAt
		existingEntry.heapItem.expiresAt = expiresAt
		existingEntry.heapItem.seq = c.seq
		heap.Fix(c.expiryHeap, existingEntry.heapItem.index)
		return
	}

	if c.maxSize > 0 && len(c.store) >= c.maxSize {
		c.evictEarliest()
	}

	heapItem := &expiryHeapItem{
		key:       key,
		expiresAt: expiresAt,
		seq:       c.seq,
	}
	heap.Push(c.expiryHeap, heapItem)

	c.store[key] = &cacheEntry[T]{
		CacheEntry: &CacheEntry[T]{
			Value:     value,
			ExpiresAt: expiresAt,
		},
		heapItem: heapItem,
	}
}

// Delete removes key from the cache. Deleting an absent key is a no-op.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.store[key]; exists {
		c.deleteEntry(key, entry)
	}
}

// Clear removes all entries from the cache. Statistics are preserved.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry[T])
	c.expiryHeap = &expiryHeap{}
	heap.Init(c.expiryHeap)

	c.logger.Debug("Cleared all entries in the cache")
}

// Size returns the number of stored entries, including expired entries that no
// Get has removed yet.
func (c *Cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.store)
}

// GetStats returns cache statistics.
func (c *Cache[T]) GetStats() CacheStat {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps)
	}

	return CacheStat{
		Name:         c.name,
		Size:         len(c.store),
		MaxSize:      c.maxSize,
		HitCount:     c.hitCount,
		MissCount:    c.missCount,
		HitRate:      hitRate,
		EvictCount:   c.evictCount,
		ExpiredCount: c.expiredCount,
	}
}

// evictEarliest removes the entry that expires soonest.
func (c *Cache[T]) evictEarliest() {
	if c.expiryHeap.Len() == 0 {
		return
	}

	earliest := (*c.expiryHeap)[0]
	if entry, exists := c.store[earliest.key]; exists {
		c.deleteEntry(earliest.key, entry)
		c.evictCount++
		c.logger.Debug("Cache entry evicted", log.String("key", earliest.key))
	}
}

// deleteEntry removes an entry from both the store and the expiry heap.
func (c *Cache[T]) deleteEntry(key string, entry *cacheEntry[T]) {
	delete(c.store, key)
	if entry.heapItem != nil && entry.heapItem.index >= 0 {
		heap.Remove(c.expiryHeap, entry.heapItem.index)
	}
}

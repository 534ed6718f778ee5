package services

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"

	"seo-forecast-api/internal/models"
)

// Generic in-memory cache with type safety
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]*cacheItem[V]
	ttl   time.Duration
}

type cacheItem[V any] struct {
	value      V
	expiration time.Time
}

func NewCache[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	c := &Cache[K, V]{
		items: make(map[K]*cacheItem[V]),
		ttl:   ttl,
	}

	// Start cleanup goroutine
	go c.cleanup()

	return c
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiration) {
		var zero V
		return zero, false
	}

	return item.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem[V]{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

func (c *Cache[K, V]) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expiration) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}

// ForecastCache holds recent forecast results keyed by a digest of the raw
// upload, so re-submitting the same file skips refitting. Results only live
// in memory; nothing outlasts the process.
type ForecastCache struct {
	forecasts *Cache[string, *models.ForecastResponse]
}

func NewForecastCache(ttl time.Duration) *ForecastCache {
	return &ForecastCache{
		forecasts: NewCache[string, *models.ForecastResponse](ttl),
	}
}

// Key derives the cache key from the raw uploaded bytes.
func (s *ForecastCache) Key(upload []byte) string {
	return fmt.Sprintf("%x", md5.Sum(upload))
}

func (s *ForecastCache) Get(key string) (*models.ForecastResponse, bool) {
	if forecast, found := s.forecasts.Get(key); found {
		forecast.CacheHit = true
		return forecast, true
	}
	return nil, false
}

func (s *ForecastCache) Set(key string, forecast *models.ForecastResponse) {
	s.forecasts.Set(key, forecast)
}

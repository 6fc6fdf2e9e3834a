package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
)

// cacheEntry holds a device's element list with its timestamp.
type cacheEntry struct {
	elements  []model.ScreenElement
	timestamp time.Time
}

// ElementCache provides a TTL-based cache of on-screen elements per device.
type ElementCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewElementCache creates a new cache. A ttl of 0 disables caching.
func NewElementCache(ttl time.Duration) *ElementCache {
	return &ElementCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Elements returns cached elements for deviceID if within TTL, otherwise
// reads fresh ones from robot.
func (c *ElementCache) Elements(ctx context.Context, deviceID string, robot platform.Robot) ([]model.ScreenElement, error) {
	if c.ttl == 0 {
		return robot.GetElementsOnScreen(ctx)
	}

	c.mu.Lock()
	if entry, ok := c.entries[deviceID]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		elements := entry.elements
		c.mu.Unlock()
		return elements, nil
	}
	c.mu.Unlock()

	elements, err := robot.GetElementsOnScreen(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[deviceID] = cacheEntry{elements: elements, timestamp: c.now()}
	c.mu.Unlock()

	return elements, nil
}

// Invalidate drops the cached elements of one device.
func (c *ElementCache) Invalidate(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, deviceID)
}

// InvalidateAll clears the entire cache.
func (c *ElementCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

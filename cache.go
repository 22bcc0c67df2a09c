package main

import (
	"sync"
	"time"
)

// ScanCache provides thread-safe caching of the last scan result for serve
// mode, so repeated API calls don't re-crawl the portal within the TTL.
type ScanCache struct {
	mu          sync.RWMutex
	result      *ScanResult
	lastUpdated time.Time
	ttl         time.Duration
}

// NewScanCache creates a new scan cache with the specified TTL
func NewScanCache(ttl time.Duration) *ScanCache {
	return &ScanCache{
		ttl: ttl,
	}
}

// Get retrieves the cached scan result if present and not expired.
// Returns a copy so callers can't mutate the cached rows.
func (c *ScanCache) Get() (*ScanResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.result == nil {
		return nil, false
	}
	if time.Since(c.lastUpdated) > c.ttl {
		return nil, false
	}

	return c.copyResult(), true
}

// Set updates the cache with a new scan result
func (c *ScanCache) Set(result *ScanResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = result
	c.lastUpdated = time.Now()
}

// Clear removes the cached result
func (c *ScanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = nil
	c.lastUpdated = time.Time{}
}

// LastUpdated returns when the cache was last updated
func (c *ScanCache) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastUpdated
}

// IsExpired checks if the cache has expired
func (c *ScanCache) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.result == nil {
		return true
	}
	return time.Since(c.lastUpdated) > c.ttl
}

// copyResult clones the cached result. Caller must hold at least a read lock.
func (c *ScanCache) copyResult() *ScanResult {
	clone := *c.result
	clone.Rows = make([]OutputRow, len(c.result.Rows))
	copy(clone.Rows, c.result.Rows)
	return &clone
}

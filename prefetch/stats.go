package prefetch

import "sync/atomic"

// cacheStats holds the cache's atomic counters.
type cacheStats struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	fetches   atomic.Uint64
	fallbacks atomic.Uint64
	evictions atomic.Uint64
}

// Stats is a point-in-time snapshot of cache statistics.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Fetches   uint64
	Fallbacks uint64
	Evictions uint64
	HitRate   float64
}

// Stats returns current cache statistics.
// This operation is mostly lock-free (atomic counters).
func (c *Cache) Stats() Stats {
	hits := c.stats.hits.Load()
	misses := c.stats.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Hits:      hits,
		Misses:    misses,
		Fetches:   c.stats.fetches.Load(),
		Fallbacks: c.stats.fallbacks.Load(),
		Evictions: c.stats.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache) ResetStats() {
	c.stats.hits.Store(0)
	c.stats.misses.Store(0)
	c.stats.fetches.Store(0)
	c.stats.fallbacks.Store(0)
	c.stats.evictions.Store(0)
}

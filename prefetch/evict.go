package prefetch

// EvictByDistance removes every cached entry whose cyclic distance from
// the center index exceeds EvictionFactor times the preload radius.
// Returns the number of entries removed.
//
// Run this before EvictToCapacity so the proximity-based policy gets first
// say about what survives.
func (c *Cache) EvictByDistance(center, total int) int {
	if total <= 0 {
		return 0
	}
	cutoff := c.cfg.EvictionFactor * c.cfg.PreloadRadius
	ctr := normalize(center, total)

	c.mu.Lock()
	var stale []int
	c.entries.Range(func(key int, _ Entry) bool {
		if Distance(key, ctr, total) > cutoff {
			stale = append(stale, key)
		}
		return true
	})
	for _, key := range stale {
		c.entries.Delete(key)
	}
	c.mu.Unlock()

	if len(stale) > 0 {
		c.stats.evictions.Add(uint64(len(stale)))
		c.log.Debug("distance eviction", "removed", len(stale), "center", ctr)
	}
	return len(stale)
}

// EvictToCapacity removes oldest-inserted entries until the cache holds at
// most maxEntries. Insertion order, not access order: the distance pass has
// already pruned the entries most likely to still be needed, so the cap
// pass trades true recency tracking for simplicity. Returns the number of
// entries removed.
func (c *Cache) EvictToCapacity(maxEntries int) int {
	if maxEntries < 0 {
		maxEntries = 0
	}

	c.mu.Lock()
	removed := 0
	for c.entries.Len() > maxEntries {
		if _, _, ok := c.entries.PopOldest(); !ok {
			break
		}
		removed++
	}
	c.mu.Unlock()

	if removed > 0 {
		c.stats.evictions.Add(uint64(removed))
		c.log.Debug("capacity eviction", "removed", removed, "cap", maxEntries)
	}
	return removed
}

// Maintain runs the full eviction pass for one preload cycle: distance
// first, then the capacity cap from the configuration.
func (c *Cache) Maintain(center, total int) {
	c.EvictByDistance(center, total)
	c.EvictToCapacity(c.cfg.MaxEntries)
}

package prefetch

import (
	"context"
	"image"
	"image/draw"
	"log/slog"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/infinigrid/internal/fifomap"
)

// Config holds configuration for a Cache.
type Config struct {
	// MaxEntries is the hard cap on cached entries.
	// Default: 80
	MaxEntries int

	// PreloadRadius is the base cyclic radius D for predictive preloading.
	// Default: 5
	PreloadRadius int

	// EvictionFactor scales PreloadRadius into the distance-eviction
	// cutoff: entries farther than EvictionFactor*PreloadRadius from the
	// center index are removed.
	// Default: 4
	EvictionFactor int

	// FetchTimeout is the per-fetch deadline. Exceeding it is treated
	// identically to a fetch error: the entry resolves to a fallback.
	// Default: 5s
	FetchTimeout time.Duration

	// TileWidth and TileHeight are the pixel size entries are decoded to.
	// Fetched images are scaled to this size; fallbacks are synthesized at
	// it. Zero keeps fetched images at their native size.
	TileWidth  int
	TileHeight int

	// Catalog maps content indices to sources and fixes the cyclic index
	// space. Without a catalog every request resolves to a fallback.
	Catalog Catalog

	// Fetcher retrieves images. Without a fetcher every request resolves
	// to a fallback.
	Fetcher Fetcher

	// Logger receives fetch diagnostics. Default: discard.
	Logger *slog.Logger
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		MaxEntries:     80,
		PreloadRadius:  5,
		EvictionFactor: 4,
		FetchTimeout:   5 * time.Second,
	}
}

// Cache is the prefetch cache manager. It is the single owner of its maps:
// consumers read through Get/IsInFlight, request through Request and the
// Preload methods, and never mutate cache internals directly.
//
// Cache is safe for concurrent use.
type Cache struct {
	cfg Config
	log *slog.Logger

	mu         sync.RWMutex
	entries    *fifomap.Map[int, Entry]
	inflight   map[int]*Handle
	generation uint64 // bumped by Clear; stale fetch results are discarded

	stats cacheStats
}

// New creates a cache with the given configuration.
// Zero-valued config fields fall back to defaults.
func New(cfg Config) *Cache {
	def := DefaultConfig()
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = def.MaxEntries
	}
	if cfg.PreloadRadius <= 0 {
		cfg.PreloadRadius = def.PreloadRadius
	}
	if cfg.EvictionFactor <= 0 {
		cfg.EvictionFactor = def.EvictionFactor
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = def.FetchTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	return &Cache{
		cfg:      cfg,
		log:      log,
		entries:  fifomap.New[int, Entry](),
		inflight: make(map[int]*Handle),
	}
}

// IndexSpace returns the size of the cyclic content space (the catalog
// size), or zero without a catalog.
func (c *Cache) IndexSpace() int {
	if c.cfg.Catalog == nil {
		return 0
	}
	return c.cfg.Catalog.Len()
}

// key normalizes an arbitrary content index into the cyclic space.
func (c *Cache) key(index int) int {
	return normalize(index, c.IndexSpace())
}

// Get returns the cached entry for a content index. Synchronous, no side
// effects beyond hit/miss accounting.
func (c *Cache) Get(index int) (Entry, bool) {
	k := c.key(index)
	c.mu.RLock()
	e, ok := c.entries.Get(k)
	c.mu.RUnlock()
	if ok {
		c.stats.hits.Add(1)
	} else {
		c.stats.misses.Add(1)
	}
	return e, ok
}

// IsInFlight reports whether a fetch for the index is currently pending.
func (c *Cache) IsInFlight(index int) bool {
	k := c.key(index)
	c.mu.RLock()
	_, ok := c.inflight[k]
	c.mu.RUnlock()
	return ok
}

// Request returns a handle to the eventual entry for a content index.
//
// If the entry is cached the handle is already resolved. If a fetch is in
// flight the existing handle is returned; the in-flight table is the
// single source of truth, so a given key never has more than one
// outstanding fetch. Otherwise a new fetch starts on a background
// goroutine; its result (real or fallback) is stored in the cache and the
// in-flight registration removed, whatever the outcome.
func (c *Cache) Request(index int) *Handle {
	k := c.key(index)

	c.mu.Lock()
	if e, ok := c.entries.Get(k); ok {
		c.mu.Unlock()
		return resolvedHandle(e)
	}
	if h, ok := c.inflight[k]; ok {
		c.mu.Unlock()
		return h
	}
	h := newHandle(k)
	c.inflight[k] = h
	gen := c.generation
	c.mu.Unlock()

	c.stats.fetches.Add(1)
	go c.fetch(h, gen)
	return h
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries.Len()
}

// Clear drops every cached entry and disowns in-flight fetches: a result
// arriving after Clear is discarded rather than resurrecting a stale key.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries.Clear()
	c.inflight = make(map[int]*Handle)
	c.generation++
	c.mu.Unlock()
}

// fetch runs one fetch to completion and merges the result into the cache.
func (c *Cache) fetch(h *Handle, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.FetchTimeout)
	defer cancel()

	entry := c.resolve(ctx, h.index)

	c.mu.Lock()
	if c.inflight[h.index] == h {
		delete(c.inflight, h.index)
	}
	if gen == c.generation {
		c.entries.Set(h.index, entry)
	}
	c.mu.Unlock()

	h.resolve(entry)
}

// resolve produces the entry for an index: decoded imagery on success, a
// tagged fallback on any failure. Failures never propagate to callers.
func (c *Cache) resolve(ctx context.Context, index int) Entry {
	if c.cfg.Catalog == nil || c.cfg.Catalog.Len() <= 0 || c.cfg.Fetcher == nil {
		return c.fallback(index)
	}

	url := c.cfg.Catalog.SourceURL(index)
	img, err := c.cfg.Fetcher.Fetch(ctx, url)
	if err != nil {
		if isTimeout(ctx, err) {
			c.log.Warn("fetch timed out, using fallback", "index", index, "url", url)
		} else {
			c.log.Warn("fetch failed, using fallback", "index", index, "url", url, "err", err)
		}
		return c.fallback(index)
	}

	return Entry{
		Index: index,
		Kind:  KindReal,
		Image: c.normalizeImage(img),
	}
}

// fallback synthesizes and accounts a fallback entry.
func (c *Cache) fallback(index int) Entry {
	c.stats.fallbacks.Add(1)
	w, h := c.cfg.TileWidth, c.cfg.TileHeight
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Entry{
		Index: index,
		Kind:  KindFallback,
		Image: FallbackImage(index, w, h),
		Color: FallbackColor(index),
	}
}

// normalizeImage converts a decoded image to RGBA at the configured tile
// size. Without a configured size the native resolution is kept.
func (c *Cache) normalizeImage(img image.Image) *image.RGBA {
	if c.cfg.TileWidth > 0 && c.cfg.TileHeight > 0 {
		dst := image.NewRGBA(image.Rect(0, 0, c.cfg.TileWidth, c.cfg.TileHeight))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		return dst
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// discardHandler silently drops log records (Enabled returns false so
// callers skip formatting).
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

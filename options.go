package infinigrid

import (
	"time"

	"github.com/gogpu/infinigrid/prefetch"
)

// Option configures a Grid during creation.
// Use functional options to customize Grid behavior.
//
// Example:
//
//	// Default 256x384 tiles, no prefetching
//	g := infinigrid.New(1280, 800)
//
//	// Custom tile geometry and an injected cache (dependency injection)
//	g := infinigrid.New(1280, 800,
//	    infinigrid.WithTileSize(128, 192),
//	    infinigrid.WithGap(5),
//	    infinigrid.WithCache(cache),
//	)
type Option func(*gridOptions)

// gridOptions holds optional configuration for Grid creation.
type gridOptions struct {
	tileWidth  float64
	tileHeight float64
	gap        float64

	viewportW float64 // 0 means "match screen"
	viewportH float64

	tracker TrackerConfig

	cache *prefetch.Cache
	seq   *ContentSequence

	clock           func() time.Time
	preloadInterval time.Duration
}

// defaultGridOptions returns the default grid options.
func defaultGridOptions() gridOptions {
	return gridOptions{
		tileWidth:       256,
		tileHeight:      384,
		gap:             10,
		tracker:         DefaultTrackerConfig(),
		preloadInterval: 50 * time.Millisecond,
	}
}

// WithTileSize sets the tile size in pixels. Values <= 0 are ignored.
func WithTileSize(w, h float64) Option {
	return func(o *gridOptions) {
		if w > 0 {
			o.tileWidth = w
		}
		if h > 0 {
			o.tileHeight = h
		}
	}
}

// WithGap sets the inter-tile gap in pixels.
func WithGap(gap float64) Option {
	return func(o *gridOptions) {
		if gap >= 0 {
			o.gap = gap
		}
	}
}

// WithEase sets the per-tick easing factor for scroll interpolation.
func WithEase(ease float64) Option {
	return func(o *gridOptions) {
		o.tracker.Ease = ease
	}
}

// WithDebounce sets how long after the last movement the tracker keeps
// reporting the actively-scrolling flag.
func WithDebounce(d time.Duration) Option {
	return func(o *gridOptions) {
		o.tracker.Debounce = d
	}
}

// WithViewport sets the render-space extent wrapped positions map onto.
// By default the viewport equals the screen size (1:1 pixel mapping).
func WithViewport(w, h float64) Option {
	return func(o *gridOptions) {
		o.viewportW = w
		o.viewportH = h
	}
}

// WithCache injects the prefetch cache the grid consults each tick.
// The grid never creates its own cache: the owner constructs one instance
// and passes a reference to every consumer. Without a cache the grid only
// positions tiles.
func WithCache(c *prefetch.Cache) Option {
	return func(o *gridOptions) {
		o.cache = c
	}
}

// WithSequence injects the content sequence used to number tiles.
func WithSequence(s *ContentSequence) Option {
	return func(o *gridOptions) {
		o.seq = s
	}
}

// WithClock injects the time source used for preload throttling and the
// scroll debounce. Inject a fake for deterministic tests.
func WithClock(fn func() time.Time) Option {
	return func(o *gridOptions) {
		o.clock = fn
	}
}

// WithPreloadInterval sets the minimum wall-time between predictive preload
// passes, bounding cache-scan overhead independent of frame rate.
func WithPreloadInterval(d time.Duration) Option {
	return func(o *gridOptions) {
		if d > 0 {
			o.preloadInterval = d
		}
	}
}

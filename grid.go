package infinigrid

import (
	"log/slog"
	"time"

	"github.com/gogpu/infinigrid/prefetch"
)

// Grid ties the layout, scroll tracker, wrap engine and prefetch cache
// together behind the surface an external frame driver calls once per
// frame. It owns the tile pool and the content sequence; the cache is
// injected, never created implicitly.
//
// Grid is not safe for concurrent use: exactly one tick runs to completion
// before the next begins. Fetches issued by the cache complete on background
// goroutines and become visible to a later tick.
type Grid struct {
	opts gridOptions

	screen   Point
	viewport Point
	layout   Layout
	wrapper  Wrapper

	tracker *Tracker
	tiles   []*Tile
	results []WrapResult

	cache *prefetch.Cache
	seq   *ContentSequence

	clock       func() time.Time
	lastPreload time.Time

	log *slog.Logger
}

// New creates a grid for a screen of the given pixel size and performs the
// initial layout.
func New(screenW, screenH float64, opts ...Option) *Grid {
	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.tracker.Clock == nil {
		o.tracker.Clock = o.clock
	}
	if o.seq == nil {
		o.seq = NewContentSequence(0)
	}

	g := &Grid{
		opts:    o,
		tracker: NewTracker(o.tracker),
		cache:   o.cache,
		seq:     o.seq,
		clock:   o.clock,
		log:     Logger(),
	}
	g.Resize(screenW, screenH)
	return g
}

// Resize recomputes the layout for a new screen size, rebuilds the tile
// pool and zeroes all wrap offsets. Meshes attached to the previous tiles
// are dropped with them; re-attach after a resize.
func (g *Grid) Resize(screenW, screenH float64) {
	g.screen = Point{X: screenW, Y: screenH}
	g.viewport = g.screen
	if g.opts.viewportW > 0 && g.opts.viewportH > 0 {
		g.viewport = Point{X: g.opts.viewportW, Y: g.opts.viewportH}
	}

	g.layout = ComputeLayout(screenW, screenH, g.opts.tileWidth, g.opts.tileHeight, g.opts.gap)
	g.wrapper = NewWrapper(g.layout, g.screen, g.viewport)

	g.tiles = make([]*Tile, g.layout.Total)
	for i := range g.tiles {
		g.tiles[i] = &Tile{
			Index:   i,
			Content: g.seq.Next(),
			Bounds:  g.layout.SlotBounds(i),
		}
	}
	g.results = make([]WrapResult, len(g.tiles))

	g.log.Info("layout recomputed",
		"columns", g.layout.Columns,
		"rows", g.layout.Rows,
		"periodX", g.layout.Period.X,
		"periodY", g.layout.Period.Y,
	)

	if g.cache != nil && len(g.tiles) > 0 {
		g.cache.PreloadVisible(g.contents())
	}
}

// Update runs one frame tick: ease the scroll, wrap every tile, push
// positions and freshly cached content to attached meshes, then run the
// throttled preload and eviction pass.
//
// The returned slice is reused between ticks; copy it if retained.
func (g *Grid) Update() []WrapResult {
	g.tracker.Tick()
	state := g.tracker.State()

	for i, t := range g.tiles {
		res := g.wrapper.Update(t, state)
		g.results[i] = res
		if t.Mesh != nil {
			t.Mesh.SetPosition(res.Position)
		}
	}

	g.present()
	g.maybePreload(state)
	return g.results
}

// Layout returns the current layout.
func (g *Grid) Layout() Layout { return g.layout }

// Tracker returns the scroll tracker; feed input through it.
func (g *Grid) Tracker() *Tracker { return g.tracker }

// Tiles returns the live tile pool.
func (g *Grid) Tiles() []*Tile { return g.tiles }

// Cache returns the injected prefetch cache, or nil.
func (g *Grid) Cache() *prefetch.Cache { return g.cache }

// AttachMesh binds a rendering handle to the tile at the given slot index.
func (g *Grid) AttachMesh(index int, m Placeable) {
	if index < 0 || index >= len(g.tiles) {
		return
	}
	t := g.tiles[index]
	t.Mesh = m
	t.presented = false
}

// present pushes newly available cache entries into meshes that can
// display them. Each tile is presented at most once per entry; a cache
// read here sees the cache as of the start of the tick.
func (g *Grid) present() {
	if g.cache == nil {
		return
	}
	for _, t := range g.tiles {
		if t.Mesh == nil || t.presented {
			continue
		}
		p, ok := t.Mesh.(Presenter)
		if !ok {
			continue
		}
		if e, ok := g.cache.Get(t.Content); ok {
			p.Present(e)
			t.presented = true
		}
	}
}

// maybePreload runs the predictive preload and eviction pass, rate-limited
// to once per preload interval regardless of tick frequency.
func (g *Grid) maybePreload(state ScrollState) {
	if g.cache == nil || len(g.tiles) == 0 {
		return
	}
	now := g.clock()
	if !g.lastPreload.IsZero() && now.Sub(g.lastPreload) < g.opts.preloadInterval {
		return
	}
	g.lastPreload = now

	center := g.centerContent(state.Current)
	total := g.cache.IndexSpace()

	dir := 0
	if state.Active {
		dir = int(state.DirY)
	}

	g.cache.PreloadVisible(g.contents())
	g.cache.PreloadByGrid(prefetch.GridView{
		Contents:    g.contents(),
		Columns:     g.layout.Columns,
		Rows:        g.layout.Rows,
		BaseColumns: g.layout.BaseColumns,
		BaseRows:    g.layout.BaseRows,
	}, prefetch.ScrollHint{
		DirX:   int(state.DirX),
		DirY:   int(state.DirY),
		Active: state.Active,
	})
	g.cache.PreloadAround(center, dir, total)

	g.cache.Maintain(center, total)
}

// centerContent returns the content index of the tile whose wrapped
// position is currently nearest the viewport center.
func (g *Grid) centerContent(scroll Point) int {
	best := 0
	bestDist := -1.0
	for _, t := range g.tiles {
		pos := g.wrapper.Unwrapped(t, scroll)
		d := pos.Length()
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = t.Content
		}
	}
	return best
}

// contents returns the content index of every instantiated tile, in slot
// order. Reused by preload passes; the slice is rebuilt per call because
// tiles never change content between layouts.
func (g *Grid) contents() []int {
	cs := make([]int, len(g.tiles))
	for i, t := range g.tiles {
		cs[i] = t.Content
	}
	return cs
}

package infinigrid

// WrapResult reports the outcome of one wrap update for a tile.
type WrapResult struct {
	// Position is the tile's wrapped render-space position (viewport
	// centered), after any wrap applied this tick.
	Position Point

	// WrappedX and WrappedY report whether the tile was translated by one
	// grid period on that axis this tick.
	WrappedX bool
	WrappedY bool
}

// Wrapper computes wrapped tile positions for one grid geometry.
//
// All fields are in render-space units. A Wrapper is immutable between
// layout changes; build a fresh one via NewWrapper after every re-layout,
// with tile extras reset to zero, so no stale offsets survive a geometry
// change.
type Wrapper struct {
	// Viewport is the render-space extent of the visible area.
	Viewport Point

	// Period is the render-space wrap distance per axis. A zero period on
	// an axis disables wrapping on that axis (degenerate layout).
	Period Point

	// TileSize is the render-space tile size. It doubles as the boundary
	// buffer: wraps trigger while a tile is still within one tile-size of
	// the edge, inside the visually buffered region, so the jump is never
	// visible.
	TileSize Point

	ratio Point // render units per input pixel, per axis
}

// NewWrapper derives a wrapper from a layout, the screen size in pixels and
// the viewport size in render units. Pass viewport == screen for a 1:1
// pixel-space mapping.
func NewWrapper(l Layout, screen, viewport Point) Wrapper {
	var ratio Point
	if screen.X > 0 {
		ratio.X = viewport.X / screen.X
	}
	if screen.Y > 0 {
		ratio.Y = viewport.Y / screen.Y
	}
	return Wrapper{
		Viewport: viewport,
		Period:   Point{X: l.Period.X * ratio.X, Y: l.Period.Y * ratio.Y},
		TileSize: Point{X: l.TileWidth * ratio.X, Y: l.TileHeight * ratio.Y},
		ratio:    ratio,
	}
}

// Unwrapped maps a tile's captured screen bounds and the eased scroll to
// its unwrapped render-space position, minus the accumulated wrap offset.
// Increasing scroll carries tiles toward negative render coordinates.
func (w Wrapper) Unwrapped(t *Tile, scroll Point) Point {
	c := t.Bounds.Center()
	return Point{
		X: c.X*w.ratio.X - w.Viewport.X/2 - scroll.X*w.ratio.X - t.Extra.X,
		Y: c.Y*w.ratio.Y - w.Viewport.Y/2 - scroll.Y*w.ratio.Y - t.Extra.Y,
	}
}

// Update recomputes the tile's position from this tick's scroll state and
// applies at most one wrap per axis.
//
// Wrapping is strictly directional: a tile only wraps back into view when
// motion is in the direction that would otherwise carry it further out.
// Taking a single branch per axis consumes both of that axis's edge flags
// for the tick, so one crossing can never trigger twice.
func (w Wrapper) Update(t *Tile, s ScrollState) WrapResult {
	pos := w.Unwrapped(t, s.Current)
	res := WrapResult{}

	if w.Period.X > 0 {
		halfW := w.TileSize.X / 2
		viewHalf := w.Viewport.X / 2
		isBefore := pos.X+halfW < -viewHalf+w.TileSize.X
		isAfter := pos.X-halfW > viewHalf-w.TileSize.X
		switch {
		case s.DirX == DirectionPositive && isBefore:
			t.Extra.X -= w.Period.X
			pos.X += w.Period.X
			res.WrappedX = true
		case s.DirX == DirectionNegative && isAfter:
			t.Extra.X += w.Period.X
			pos.X -= w.Period.X
			res.WrappedX = true
		}
	}

	if w.Period.Y > 0 {
		halfH := w.TileSize.Y / 2
		viewHalf := w.Viewport.Y / 2
		isBefore := pos.Y+halfH < -viewHalf+w.TileSize.Y
		isAfter := pos.Y-halfH > viewHalf-w.TileSize.Y
		switch {
		case s.DirY == DirectionPositive && isBefore:
			t.Extra.Y -= w.Period.Y
			pos.Y += w.Period.Y
			res.WrappedY = true
		case s.DirY == DirectionNegative && isAfter:
			t.Extra.Y += w.Period.Y
			pos.Y -= w.Period.Y
			res.WrappedY = true
		}
	}

	res.Position = pos
	return res
}

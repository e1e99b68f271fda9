package infinigrid

import "github.com/gogpu/infinigrid/prefetch"

// Placeable is the opaque handle a rendering collaborator exposes for one
// tile: a 2D position and a 2D scale in render-space units. The engine
// never draws; it only moves placeables.
type Placeable interface {
	SetPosition(Point)
	SetScale(Point)
}

// Presenter is implemented by placeables that can display fetched content.
// When a tile's cache entry becomes available, the grid pushes it into the
// mesh exactly once.
type Presenter interface {
	Present(prefetch.Entry)
}

// Tile is one grid-cell slot. Tiles are created per slot on layout and
// destroyed on re-layout; identity is the stable slot index.
type Tile struct {
	// Index is the slot index in [0, Layout.Total).
	Index int

	// Content is the content index assigned from the grid's sequence.
	Content int

	// Bounds are the unwrapped screen-space bounds in pixels, captured once
	// from layout. They never change between layouts.
	Bounds Rect

	// Extra is the accumulated wrap offset in render-space units. It only
	// ever changes by whole multiples of the grid period, never partially.
	Extra Point

	// Mesh is the optional rendering handle this tile drives.
	Mesh Placeable

	presented bool
}

package infinigrid

import "math"

// layoutBuffer is the number of extra columns and rows added beyond what
// covers the screen, guaranteeing full coverage plus one tile of slack on
// each edge while tiles are mid-wrap.
const layoutBuffer = 2

// Layout describes the tile grid derived from a screen size.
//
// Columns and Rows are the buffered slot counts actually instantiated.
// BaseColumns and BaseRows are the unbuffered counts that form one seamless
// repeating cycle; the grid period is the base count times the tile pitch.
// Using the buffered count for the period would leave a visible seam, since
// the repeat distance would no longer equal an exact number of tile pitches.
type Layout struct {
	Columns int
	Rows    int
	Total   int

	BaseColumns int
	BaseRows    int

	// Period is the wrap distance per axis in screen pixels: translating a
	// tile by one period maps it onto an equivalent on-screen position.
	Period Point

	TileWidth  float64
	TileHeight float64
	Gap        float64
}

// ComputeLayout derives the grid layout for a screen of the given size.
//
// A degenerate screen or tile size (any dimension <= 0) yields a zero-tile
// layout rather than an error; callers must tolerate an empty layout.
func ComputeLayout(screenW, screenH, tileW, tileH, gap float64) Layout {
	l := Layout{
		TileWidth:  tileW,
		TileHeight: tileH,
		Gap:        gap,
	}

	pitchX := tileW + gap
	pitchY := tileH + gap
	if screenW <= 0 || screenH <= 0 || pitchX <= 0 || pitchY <= 0 {
		return l
	}

	l.Columns = int(math.Ceil(screenW/pitchX)) + layoutBuffer
	l.Rows = int(math.Ceil(screenH/pitchY)) + layoutBuffer
	l.Total = l.Columns * l.Rows

	l.BaseColumns = int(math.Floor((screenW + gap) / pitchX))
	l.BaseRows = int(math.Floor((screenH + gap) / pitchY))
	l.Period = Point{
		X: float64(l.BaseColumns) * pitchX,
		Y: float64(l.BaseRows) * pitchY,
	}
	return l
}

// PitchX returns the horizontal tile pitch (tile width plus gap).
func (l Layout) PitchX() float64 { return l.TileWidth + l.Gap }

// PitchY returns the vertical tile pitch (tile height plus gap).
func (l Layout) PitchY() float64 { return l.TileHeight + l.Gap }

// Empty reports whether the layout holds no tile slots.
func (l Layout) Empty() bool { return l.Total == 0 }

// SlotAt returns the row and column for a linear slot index.
func (l Layout) SlotAt(index int) (row, col int) {
	if l.Columns <= 0 {
		return 0, 0
	}
	return index / l.Columns, index % l.Columns
}

// SlotBounds returns the captured screen-space bounds for a slot.
func (l Layout) SlotBounds(index int) Rect {
	row, col := l.SlotAt(index)
	return RectXYWH(
		float64(col)*l.PitchX(),
		float64(row)*l.PitchY(),
		l.TileWidth,
		l.TileHeight,
	)
}

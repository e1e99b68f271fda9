package infinigrid

import (
	"math"
	"math/rand"
	"testing"
)

// testWrapper builds the 1000x1000 screen, 128x192 tile, gap 5 geometry
// used throughout: periods (931, 985), 1:1 render mapping.
func testWrapper(t *testing.T) (Layout, Wrapper) {
	t.Helper()
	l := ComputeLayout(1000, 1000, 128, 192, 5)
	w := NewWrapper(l, Pt(1000, 1000), Pt(1000, 1000))
	if !almostEqual(w.Period.X, 931) || !almostEqual(w.Period.Y, 985) {
		t.Fatalf("Period = %v, want (931, 985)", w.Period)
	}
	return l, w
}

func TestWrapperUnwrapped(t *testing.T) {
	_, w := testWrapper(t)
	tile := &Tile{Bounds: RectXYWH(0, 0, 128, 192)}

	p := w.Unwrapped(tile, Pt(0, 0))
	if !almostEqual(p.X, -436) || !almostEqual(p.Y, -404) {
		t.Fatalf("Unwrapped at rest = %v, want (-436, -404)", p)
	}

	p = w.Unwrapped(tile, Pt(10, 20))
	if !almostEqual(p.X, -446) || !almostEqual(p.Y, -424) {
		t.Fatalf("Unwrapped while scrolled = %v, want (-446, -424)", p)
	}

	tile.Extra = Pt(-931, 0)
	p = w.Unwrapped(tile, Pt(0, 0))
	if !almostEqual(p.X, 495) {
		t.Fatalf("Unwrapped with extra = %v, want X=495", p)
	}
}

func TestWrapperWrapsForward(t *testing.T) {
	_, w := testWrapper(t)
	tile := &Tile{Bounds: RectXYWH(0, 0, 128, 192)}

	// Scrolled just past the left edge buffer.
	s := ScrollState{Current: Pt(1, 0), DirX: DirectionPositive, DirY: DirectionPositive}
	res := w.Update(tile, s)

	if !res.WrappedX {
		t.Fatal("tile leaving on the left did not wrap")
	}
	if !almostEqual(tile.Extra.X, -931) {
		t.Fatalf("Extra.X = %v, want -931", tile.Extra.X)
	}
	if !almostEqual(res.Position.X, 494) {
		t.Fatalf("Position.X = %v, want 494", res.Position.X)
	}
	if res.WrappedY {
		t.Fatal("Y wrapped without vertical motion")
	}
}

func TestWrapperDirectionalGate(t *testing.T) {
	_, w := testWrapper(t)

	// Same off-screen geometry as the forward case, but motion pointing
	// the other way must not wrap.
	tile := &Tile{Bounds: RectXYWH(0, 0, 128, 192)}
	s := ScrollState{Current: Pt(1, 0), DirX: DirectionNegative, DirY: DirectionPositive}
	res := w.Update(tile, s)
	if res.WrappedX {
		t.Fatal("before-edge tile wrapped on negative motion")
	}
	if tile.Extra.X != 0 {
		t.Fatalf("Extra.X = %v, want 0", tile.Extra.X)
	}

	// And symmetrically: a tile past the right edge only wraps on
	// negative motion.
	tile = &Tile{Bounds: RectXYWH(900, 0, 128, 192)}
	s = ScrollState{Current: Pt(-100, 0), DirX: DirectionPositive, DirY: DirectionPositive}
	if res := w.Update(tile, s); res.WrappedX {
		t.Fatal("after-edge tile wrapped on positive motion")
	}
	s.DirX = DirectionNegative
	if res := w.Update(tile, s); !res.WrappedX {
		t.Fatal("after-edge tile did not wrap on negative motion")
	}
	if !almostEqual(tile.Extra.X, 931) {
		t.Fatalf("Extra.X = %v, want 931", tile.Extra.X)
	}
}

func TestWrapperSingleWrapPerTick(t *testing.T) {
	_, w := testWrapper(t)

	// Several periods out of bounds: still exactly one wrap per tick.
	tile := &Tile{Bounds: RectXYWH(-3000, 0, 128, 192)}
	s := ScrollState{Current: Pt(0, 0), DirX: DirectionPositive, DirY: DirectionPositive}

	res := w.Update(tile, s)
	if !res.WrappedX {
		t.Fatal("far out-of-bounds tile did not wrap")
	}
	if !almostEqual(tile.Extra.X, -931) {
		t.Fatalf("Extra.X after one tick = %v, want exactly one period", tile.Extra.X)
	}

	res = w.Update(tile, s)
	if !res.WrappedX {
		t.Fatal("second tick did not continue wrapping")
	}
	if !almostEqual(tile.Extra.X, -2*931) {
		t.Fatalf("Extra.X after two ticks = %v, want -1862", tile.Extra.X)
	}
}

func TestWrapperExtraStaysPeriodic(t *testing.T) {
	_, w := testWrapper(t)
	rng := rand.New(rand.NewSource(7))

	tiles := []*Tile{
		{Bounds: RectXYWH(0, 0, 128, 192)},
		{Bounds: RectXYWH(399, 197, 128, 192)},
		{Bounds: RectXYWH(798, 788, 128, 192)},
	}

	scroll := Pt(0, 0)
	last := scroll
	for i := 0; i < 500; i++ {
		scroll.X += (rng.Float64() - 0.4) * 120
		scroll.Y += (rng.Float64() - 0.4) * 120

		s := ScrollState{Current: scroll, DirX: DirectionPositive, DirY: DirectionPositive}
		if scroll.X < last.X {
			s.DirX = DirectionNegative
		}
		if scroll.Y < last.Y {
			s.DirY = DirectionNegative
		}
		last = scroll

		for _, tile := range tiles {
			w.Update(tile, s)
			if m := math.Mod(tile.Extra.X, 931); math.Abs(m) > 1e-6 {
				t.Fatalf("tick %d: Extra.X = %v not a multiple of 931", i, tile.Extra.X)
			}
			if m := math.Mod(tile.Extra.Y, 985); math.Abs(m) > 1e-6 {
				t.Fatalf("tick %d: Extra.Y = %v not a multiple of 985", i, tile.Extra.Y)
			}
		}
	}
}

func TestWrapperRoundTrip(t *testing.T) {
	l, w := testWrapper(t)

	// Base-region tiles must come back to their starting position after
	// scrolling exactly one horizontal period, having wrapped once.
	// Columns beyond BaseColumns duplicate base columns and sit out the
	// cycle, so they are excluded.
	var tiles []*Tile
	var start []Point
	for col := 0; col < l.BaseColumns; col++ {
		tile := &Tile{Bounds: l.SlotBounds(col)}
		tiles = append(tiles, tile)
		start = append(start, w.Unwrapped(tile, Pt(0, 0)))
	}

	const steps = 20
	scroll := 0.0
	for i := 0; i < steps; i++ {
		scroll = 931 * float64(i+1) / steps
		s := ScrollState{Current: Pt(scroll, 0), DirX: DirectionPositive, DirY: DirectionPositive}
		for _, tile := range tiles {
			w.Update(tile, s)
		}
	}

	for i, tile := range tiles {
		if !almostEqual(tile.Extra.X, -931) {
			t.Errorf("col %d: Extra.X = %v, want -931 (one wrap)", i, tile.Extra.X)
		}
		s := ScrollState{Current: Pt(scroll, 0), DirX: DirectionPositive, DirY: DirectionPositive}
		got := w.Update(tile, s).Position
		if math.Abs(got.X-start[i].X) > 1e-6 {
			t.Errorf("col %d: Position.X = %v, want %v", i, got.X, start[i].X)
		}
	}
}

func TestWrapperDegenerateAxisDisabled(t *testing.T) {
	l := ComputeLayout(100, 100, 300, 300, 0)
	w := NewWrapper(l, Pt(100, 100), Pt(100, 100))

	tile := &Tile{Bounds: RectXYWH(-3000, -3000, 300, 300)}
	s := ScrollState{Current: Pt(0, 0), DirX: DirectionPositive, DirY: DirectionPositive}
	res := w.Update(tile, s)
	if res.WrappedX || res.WrappedY {
		t.Fatal("zero-period wrapper wrapped")
	}
	if tile.Extra.X != 0 || tile.Extra.Y != 0 {
		t.Fatalf("Extra = %v, want zero", tile.Extra)
	}
}

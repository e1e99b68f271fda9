package prefetch

// GridView describes the instantiated tile slots to the grid-walking
// preloader: the content index of every slot in row-major order, plus the
// buffered and unbuffered slot counts the rows and columns derive from.
type GridView struct {
	Contents    []int
	Columns     int
	Rows        int
	BaseColumns int
	BaseRows    int
}

// ScrollHint carries the scroll direction state preload passes widen
// their margins by. DirX/DirY are -1 or +1; Active is the debounced
// actively-scrolling flag.
type ScrollHint struct {
	DirX   int
	DirY   int
	Active bool
}

// PreloadAround issues requests for every index within the preload radius
// D of center in the cyclic index space of the given size, plus an
// extended tail of up to 2D indices further out, only in the direction
// currently scrolling (dir -1, 0 or +1; 0 means no tail).
//
// Indices already cached or in flight are skipped.
func (c *Cache) PreloadAround(center, dir, total int) {
	if total <= 0 {
		return
	}
	r := c.cfg.PreloadRadius
	for off := 1; off <= r; off++ {
		c.requestIfMissing(normalize(center+off, total))
		c.requestIfMissing(normalize(center-off, total))
	}
	if dir == 0 {
		return
	}
	for off := r + 1; off <= 2*r; off++ {
		c.requestIfMissing(normalize(center+dir*off, total))
	}
}

// PreloadVisible forces a request for every instantiated tile's content,
// regardless of distance: visible tiles must never show empty content.
func (c *Cache) PreloadVisible(contents []int) {
	for _, idx := range contents {
		c.requestIfMissing(c.key(idx))
	}
}

// PreloadByGrid walks tile slots by the row and column derived from the
// linear slot index, requesting every slot inside the unbuffered region
// plus a one-slot margin per axis. The margin widens to two slots on an
// axis when the viewer is actively scrolling toward that edge.
func (c *Cache) PreloadByGrid(view GridView, hint ScrollHint) {
	if view.Columns <= 0 {
		return
	}

	marginX, marginY := 1, 1
	if hint.Active {
		if hint.DirX > 0 {
			marginX = 2
		}
		if hint.DirY > 0 {
			marginY = 2
		}
	}

	for i, content := range view.Contents {
		row := i / view.Columns
		col := i % view.Columns
		if col < view.BaseColumns+marginX && row < view.BaseRows+marginY {
			c.requestIfMissing(c.key(content))
		}
	}
}

// requestIfMissing starts a fetch for a normalized key unless an entry or
// an in-flight fetch already covers it. Request would deduplicate anyway;
// checking first keeps preload passes from churning resolved handles.
func (c *Cache) requestIfMissing(key int) {
	c.mu.RLock()
	_, cached := c.entries.Get(key)
	_, pending := c.inflight[key]
	c.mu.RUnlock()
	if cached || pending {
		return
	}
	c.Request(key)
}

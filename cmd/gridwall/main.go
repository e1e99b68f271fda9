// Command gridwall runs an endless-scrolling image wall. Drag with the
// mouse or scroll with the wheel; tiles wrap around forever while their
// imagery is prefetched from picsum.photos.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/infinigrid"
	"github.com/gogpu/infinigrid/integration/ebitengrid"
	"github.com/gogpu/infinigrid/prefetch"
)

func main() {
	var (
		width    = flag.Int("width", 1280, "window width")
		height   = flag.Int("height", 800, "window height")
		tileW    = flag.Int("tilew", 210, "tile width")
		tileH    = flag.Int("tileh", 315, "tile height")
		gap      = flag.Float64("gap", 12, "inter-tile gap")
		catalog  = flag.Int("catalog", 60, "catalog size (distinct images)")
		capacity = flag.Int("cap", 80, "max cached images")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		infinigrid.SetLogger(logger)
	}

	cache := prefetch.New(prefetch.Config{
		MaxEntries: *capacity,
		TileWidth:  *tileW,
		TileHeight: *tileH,
		Catalog:    picsumCatalog{count: *catalog, width: *tileW, height: *tileH},
		Fetcher:    prefetch.NewHTTPFetcher(nil),
		Logger:     infinigrid.Logger(),
	})

	grid := infinigrid.New(float64(*width), float64(*height),
		infinigrid.WithTileSize(float64(*tileW), float64(*tileH)),
		infinigrid.WithGap(*gap),
		infinigrid.WithCache(cache),
	)

	wall := ebitengrid.NewWall(*tileW, *tileH, infinigrid.Pt(float64(*width), float64(*height)))
	wall.Attach(grid)

	g := &game{
		grid:   grid,
		wall:   wall,
		width:  *width,
		height: *height,
	}

	ebiten.SetWindowTitle("gridwall")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("gridwall: %v", err)
	}
}

// picsumCatalog serves stable per-index photo URLs from picsum.photos.
type picsumCatalog struct {
	count  int
	width  int
	height int
}

func (c picsumCatalog) SourceURL(index int) string {
	// Seeded URLs give each index a stable image across runs.
	return fmt.Sprintf("https://picsum.photos/seed/gridwall-%d/%d/%d", index, c.width, c.height)
}

func (c picsumCatalog) Len() int { return c.count }

// wheelFactor converts wheel ticks into scroll pixels.
const wheelFactor = 24.0

type game struct {
	grid   *infinigrid.Grid
	wall   *ebitengrid.Wall
	width  int
	height int

	dragging     bool
	lastX, lastY int
}

func (g *game) Update() error {
	tracker := g.grid.Tracker()

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			// Dragging moves the content with the cursor, so the scroll
			// target shifts opposite to the cursor delta.
			tracker.AddScroll(float64(g.lastX-x), float64(g.lastY-y))
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	wx, wy := ebiten.Wheel()
	if wx != 0 || wy != 0 {
		tracker.AddScroll(-wx*wheelFactor, -wy*wheelFactor)
	}

	g.grid.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.wall.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

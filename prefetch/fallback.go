package prefetch

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

// fallbackPalette is the fixed set of fill colors fallback tiles cycle
// through. Deterministic per index so a fallback tile looks the same on
// every run, which makes fetch problems easy to spot in a running wall.
var fallbackPalette = []color.RGBA{
	colornames.Slategray,
	colornames.Steelblue,
	colornames.Cadetblue,
	colornames.Darkseagreen,
	colornames.Rosybrown,
	colornames.Dimgray,
	colornames.Darkkhaki,
	colornames.Lightslategray,
}

// FallbackColor returns the deterministic fill color for a content index.
func FallbackColor(index int) color.RGBA {
	return fallbackPalette[normalize(index, len(fallbackPalette))]
}

// FallbackImage synthesizes the solid-color substitute payload for a
// content index at the given pixel size.
func FallbackImage(index, width, height int) *image.RGBA {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(FallbackColor(index)), image.Point{}, draw.Src)
	return img
}

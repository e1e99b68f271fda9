package prefetch

import (
	"image"
	"image/color"
)

// Kind tags how a cache entry was produced.
type Kind uint8

const (
	// KindReal marks an entry decoded from fetched content.
	KindReal Kind = iota

	// KindFallback marks a synthesized substitute stored after a fetch
	// failure or timeout.
	KindFallback
)

// String returns the kind name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Entry is one resolved cache slot: either real fetched imagery or a
// synthesized fallback, tagged with which it is.
type Entry struct {
	// Index is the normalized content index in [0, catalog size).
	Index int

	// Kind tags the payload origin.
	Kind Kind

	// Image is the pixel payload. Never nil for entries produced by the
	// cache: fallbacks carry a solid-color image.
	Image *image.RGBA

	// Color is the fallback fill color; zero for real entries.
	Color color.RGBA
}

// IsFallback reports whether the entry is a synthesized substitute.
func (e Entry) IsFallback() bool { return e.Kind == KindFallback }

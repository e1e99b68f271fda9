// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/infinigrid"
	"github.com/gogpu/infinigrid/prefetch"
)

// Common errors returned by slot operations.
var (
	// ErrSlotClosed is returned when operations are attempted on a closed slot.
	ErrSlotClosed = errors.New("gridcanvas: slot is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gridcanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gridcanvas: nil DeviceProvider")

	// ErrInvalidRenderer is returned when the draw context cannot create
	// textures.
	ErrInvalidRenderer = errors.New("gridcanvas: renderer must implement gpucontext.TextureCreator")

	// ErrInvalidDrawContext is returned when a created texture does not
	// implement gpucontext.Texture.
	ErrInvalidDrawContext = errors.New("gridcanvas: texture does not implement gpucontext.Texture")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Slot is one tile's display surface: an RGBA pixel buffer mirrored into a
// GPU texture, plus the render-space position and scale the grid drives.
//
// Slot is NOT safe for concurrent use; drive it from the frame loop.
type Slot struct {
	provider gpucontext.DeviceProvider
	width    int
	height   int

	data    []byte
	texture any // lazily created (*gogpu.Texture)
	dirty   bool
	closed  bool

	pos   infinigrid.Point
	scale infinigrid.Point

	fallback bool // last presented entry was a fallback, for diagnostics
}

// NewSlot creates a tile slot of the given pixel size.
// The slot starts dark and dirty, so the first flush uploads a texture.
func NewSlot(provider gpucontext.DeviceProvider, width, height int) (*Slot, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Slot{
		provider: provider,
		width:    width,
		height:   height,
		data:     make([]byte, width*height*4),
		dirty:    true,
		scale:    infinigrid.Pt(1, 1),
	}, nil
}

// Width returns the slot width in pixels.
func (s *Slot) Width() int { return s.width }

// Height returns the slot height in pixels.
func (s *Slot) Height() int { return s.height }

// Format returns the texture format slot pixel data is stored in.
func (s *Slot) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// SetPosition stores the wrapped render-space position (viewport centered).
func (s *Slot) SetPosition(p infinigrid.Point) { s.pos = p }

// Position returns the last position set by the grid.
func (s *Slot) Position() infinigrid.Point { return s.pos }

// SetScale stores the render-space scale.
func (s *Slot) SetScale(p infinigrid.Point) { s.scale = p }

// Scale returns the current scale.
func (s *Slot) Scale() infinigrid.Point { return s.scale }

// IsFallback reports whether the last presented entry was a synthesized
// fallback.
func (s *Slot) IsFallback() bool { return s.fallback }

// Present copies a cache entry's pixels into the slot and marks it for
// GPU upload on the next flush. Entries smaller or larger than the slot
// are clipped; the cache normally decodes at exactly the slot size.
func (s *Slot) Present(e prefetch.Entry) {
	if s.closed || e.Image == nil {
		return
	}
	src := e.Image
	b := src.Bounds()
	w := min(s.width, b.Dx())
	h := min(s.height, b.Dy())
	for y := 0; y < h; y++ {
		srcOff := (y * src.Stride)
		dstOff := y * s.width * 4
		copy(s.data[dstOff:dstOff+w*4], src.Pix[srcOff:srcOff+w*4])
	}
	s.fallback = e.IsFallback()
	s.dirty = true
}

// Flush uploads the slot pixels to the GPU texture if dirty and returns
// the texture for drawing. The texture is created lazily: before a
// creator is available a placeholder is returned and the real texture is
// created during RenderTo.
func (s *Slot) Flush() (any, error) {
	if s.closed {
		return nil, ErrSlotClosed
	}

	if !s.dirty && s.texture != nil {
		return s.texture, nil
	}

	if s.texture == nil {
		// Defer creation to RenderTo, which has a TextureCreator.
		s.texture = &pendingTexture{width: s.width, height: s.height, data: s.data}
		s.dirty = false
		return s.texture, nil
	}

	if updater, ok := s.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(s.data); err != nil {
			return nil, fmt.Errorf("gridcanvas: texture update failed: %w", err)
		}
	}
	s.dirty = false
	return s.texture, nil
}

// Close releases the slot's GPU texture. Close is idempotent.
func (s *Slot) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.texture != nil {
		if destroyer, ok := s.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		s.texture = nil
	}
	s.provider = nil
	return nil
}

// pendingTexture is a placeholder for texture creation. It holds the data
// needed to create the real texture when a TextureCreator is available
// (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

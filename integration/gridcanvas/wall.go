// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridcanvas

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/infinigrid"
)

// Wall owns one Slot per grid tile and renders them as a group.
type Wall struct {
	provider gpucontext.DeviceProvider
	viewport infinigrid.Point
	tileW    int
	tileH    int
	slots    []*Slot
	closed   bool
}

// NewWall creates a wall of tile slots decoded at tileW x tileH pixels,
// rendered onto the given render-space viewport.
func NewWall(provider gpucontext.DeviceProvider, tileW, tileH int, viewport infinigrid.Point) (*Wall, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if tileW <= 0 || tileH <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Wall{
		provider: provider,
		viewport: viewport,
		tileW:    tileW,
		tileH:    tileH,
	}, nil
}

// Attach creates one slot per grid tile and binds them as the tiles'
// meshes. Call again after every grid resize; previous slots are closed.
func (w *Wall) Attach(g *infinigrid.Grid) error {
	if w.closed {
		return ErrSlotClosed
	}
	for _, s := range w.slots {
		_ = s.Close()
	}
	tiles := g.Tiles()
	w.slots = make([]*Slot, len(tiles))
	for i := range tiles {
		s, err := NewSlot(w.provider, w.tileW, w.tileH)
		if err != nil {
			return err
		}
		w.slots[i] = s
		g.AttachMesh(i, s)
	}
	return nil
}

// Slots returns the live slots in tile order.
func (w *Wall) Slots() []*Slot { return w.slots }

// RenderTo draws every slot to the draw context. The first error aborts
// the pass.
func (w *Wall) RenderTo(dc gpucontext.TextureDrawer) error {
	if w.closed {
		return ErrSlotClosed
	}
	for _, s := range w.slots {
		if err := s.RenderTo(dc, w.viewport); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every slot. Close is idempotent.
func (w *Wall) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	for _, s := range w.slots {
		_ = s.Close()
	}
	w.slots = nil
	return nil
}

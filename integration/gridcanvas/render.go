// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridcanvas

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/infinigrid"
)

// RenderTo flushes the slot and draws its texture to a
// gpucontext.TextureDrawer at the slot's wrapped position.
//
// The viewport parameter is the render-space extent the grid maps
// positions onto; it converts the slot's centered position into the
// top-left pixel coordinates DrawTexture expects.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
func (s *Slot) RenderTo(dc gpucontext.TextureDrawer, viewport infinigrid.Point) error {
	if s.closed {
		return ErrSlotClosed
	}

	tex, err := s.Flush()
	if err != nil {
		return err
	}

	// If the texture is pending (placeholder), create the real GPU texture
	// now that a creator is reachable.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gridcanvas: NewTextureFromRGBA failed: %w", err)
		}
		s.texture = realTex
		tex = realTex
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}

	// Centered render space to top-left pixel space.
	x := float32(viewport.X/2 + s.pos.X - float64(s.width)/2)
	y := float32(viewport.Y/2 + s.pos.Y - float64(s.height)/2)
	return dc.DrawTexture(gpuTex, x, y)
}

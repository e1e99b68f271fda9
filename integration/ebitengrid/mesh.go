// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengrid

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/infinigrid"
	"github.com/gogpu/infinigrid/prefetch"
)

// placeholderFill is the color a mesh shows before any content arrives.
var placeholderFill = color.RGBA{R: 0x22, G: 0x24, B: 0x28, A: 0xFF}

// Mesh is one tile's Ebitengine-backed display surface.
//
// Mesh is NOT safe for concurrent use; drive it from the game loop.
type Mesh struct {
	img    *ebiten.Image
	width  int
	height int

	pos   infinigrid.Point
	scale infinigrid.Point

	fallback bool
}

// NewMesh creates a mesh of the given pixel size, filled with the
// placeholder color until content is presented.
func NewMesh(width, height int) *Mesh {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := ebiten.NewImage(width, height)
	img.Fill(placeholderFill)
	return &Mesh{
		img:    img,
		width:  width,
		height: height,
		scale:  infinigrid.Pt(1, 1),
	}
}

// SetPosition stores the wrapped render-space position (viewport centered).
func (m *Mesh) SetPosition(p infinigrid.Point) { m.pos = p }

// Position returns the last position set by the grid.
func (m *Mesh) Position() infinigrid.Point { return m.pos }

// SetScale stores the render-space scale.
func (m *Mesh) SetScale(p infinigrid.Point) { m.scale = p }

// IsFallback reports whether the last presented entry was a synthesized
// fallback.
func (m *Mesh) IsFallback() bool { return m.fallback }

// Present uploads a cache entry's pixels into the mesh image. The cache
// decodes at the tile size, so this is normally a straight pixel write;
// mismatched sizes fall back to a scaled draw.
func (m *Mesh) Present(e prefetch.Entry) {
	if e.Image == nil {
		return
	}
	m.fallback = e.IsFallback()

	b := e.Image.Bounds()
	if b.Dx() == m.width && b.Dy() == m.height && e.Image.Stride == m.width*4 {
		m.img.WritePixels(e.Image.Pix)
		return
	}

	src := ebiten.NewImageFromImage(e.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(m.width)/float64(b.Dx()),
		float64(m.height)/float64(b.Dy()),
	)
	m.img.DrawImage(src, op)
	src.Deallocate()
}

// Draw renders the mesh onto screen. The viewport parameter converts the
// centered render-space position into top-left screen coordinates.
func (m *Mesh) Draw(screen *ebiten.Image, viewport infinigrid.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(m.scale.X, m.scale.Y)
	op.GeoM.Translate(
		viewport.X/2+m.pos.X-float64(m.width)*m.scale.X/2,
		viewport.Y/2+m.pos.Y-float64(m.height)*m.scale.Y/2,
	)
	screen.DrawImage(m.img, op)
}

// Deallocate releases the mesh image's GPU resources.
func (m *Mesh) Deallocate() {
	if m.img != nil {
		m.img.Deallocate()
	}
}

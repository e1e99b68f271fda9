// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengrid

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/infinigrid"
)

// Wall owns one Mesh per grid tile and draws them as a group.
type Wall struct {
	viewport infinigrid.Point
	tileW    int
	tileH    int
	meshes   []*Mesh
}

// NewWall creates a wall of tile meshes sized tileW x tileH pixels,
// drawn onto the given render-space viewport.
func NewWall(tileW, tileH int, viewport infinigrid.Point) *Wall {
	return &Wall{
		viewport: viewport,
		tileW:    tileW,
		tileH:    tileH,
	}
}

// Attach creates one mesh per grid tile and binds them as the tiles'
// meshes. Call again after every grid resize; previous meshes are
// deallocated.
func (w *Wall) Attach(g *infinigrid.Grid) {
	for _, m := range w.meshes {
		m.Deallocate()
	}
	tiles := g.Tiles()
	w.meshes = make([]*Mesh, len(tiles))
	for i := range tiles {
		m := NewMesh(w.tileW, w.tileH)
		w.meshes[i] = m
		g.AttachMesh(i, m)
	}
}

// Meshes returns the live meshes in tile order.
func (w *Wall) Meshes() []*Mesh { return w.meshes }

// Draw renders every mesh onto screen.
func (w *Wall) Draw(screen *ebiten.Image) {
	for _, m := range w.meshes {
		m.Draw(screen, w.viewport)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gridcanvas renders infinigrid tiles through the GoGPU texture
// pipeline.
//
// Each tile slot owns one GPU texture holding the tile's current imagery
// (real or fallback). Slots implement infinigrid.Placeable, so the grid
// drives their wrapped positions directly, and infinigrid.Presenter, so
// freshly cached entries are uploaded on the next flush.
//
// Textures are created lazily during RenderTo, when a
// gpucontext.TextureCreator is available, and updated in place through
// gpucontext.TextureUpdater afterwards.
//
// Typical wiring:
//
//	wall, _ := gridcanvas.NewWall(provider, 256, 384, infinigrid.Pt(1280, 800))
//	wall.Attach(grid)
//
//	// per frame, after grid.Update():
//	wall.RenderTo(dc.AsTextureDrawer())
package gridcanvas

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitengrid renders infinigrid tiles with Ebitengine.
//
// It is the lightweight counterpart to integration/gridcanvas: each tile
// is backed by an *ebiten.Image instead of a GoGPU texture, which makes
// the engine demoable in a plain desktop window with no GPU pipeline
// setup. Meshes implement infinigrid.Placeable and infinigrid.Presenter,
// so the grid positions them and feeds them cached imagery directly.
package ebitengrid

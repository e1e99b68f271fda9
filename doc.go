// Package infinigrid provides an endless-wrapping tile grid engine for Go.
//
// # Overview
//
// infinigrid positions a bounded pool of tiles on an infinitely scrollable
// plane. As the user drags or scrolls, tiles that leave the viewport are
// translated by exactly one grid period so they re-enter from the opposite
// edge, maintaining the illusion of infinite content from a finite pool.
// Off-screen tile imagery is fetched speculatively by the prefetch cache
// (see the prefetch subpackage) so tiles rarely appear empty.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/infinigrid"
//	    "github.com/gogpu/infinigrid/prefetch"
//	)
//
//	cache := prefetch.New(prefetch.DefaultConfig())
//	grid := infinigrid.New(1280, 800,
//	    infinigrid.WithTileSize(256, 384),
//	    infinigrid.WithGap(10),
//	    infinigrid.WithCache(cache),
//	)
//
//	// Once per frame:
//	grid.Tracker().AddScroll(dx, dy) // from input
//	grid.Update()                    // ease, wrap, preload, evict
//
// # Architecture
//
// The library is organized into:
//   - Public API: Grid, Layout, Tracker, Wrapper, Tile, Point, Rect
//   - prefetch: bounded image cache with fetch deduplication, predictive
//     preloading and cyclic-distance eviction
//   - integration/gridcanvas: tile texture slots over the GoGPU texture
//     pipeline (gpucontext)
//   - integration/ebitengrid: tile meshes and an interactive wall for
//     Ebitengine
//
// # Coordinate System
//
// Layout and scroll input are expressed in screen pixels with the origin at
// the top-left. Wrapped tile positions are reported in render-space units
// with the origin at the viewport center; by default render space equals
// pixel space, so positions range over [-screen/2, +screen/2]. Use
// WithViewport to map onto a different render-space extent.
//
// # Concurrency
//
// Grid, Tracker and Wrapper expect a single frame-tick driver and are not
// safe for concurrent use. The prefetch cache is safe for concurrent use;
// fetches complete on background goroutines and become visible to the next
// tick.
package infinigrid
